package service

import (
	"context"

	"github.com/raushankrgupta/intern-guide-backend/models"
	"github.com/raushankrgupta/intern-guide-backend/store"
)

// ProfileService reads, updates and deletes user profiles.
type ProfileService struct {
	store store.UserStore
}

func NewProfileService(s store.UserStore) *ProfileService {
	return &ProfileService{store: s}
}

// Get returns the user's profile. The password hash stays in the struct but
// is never serialized (json:"-" on the model).
func (s *ProfileService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.store.FindByID(ctx, id)
}

// Update merges the present fields into the stored profile. Empty-string
// name and nil slices are treated as "not provided" and left untouched;
// updated_at is always refreshed.
func (s *ProfileService) Update(ctx context.Context, id string, upd models.ProfileUpdate) error {
	return s.store.Update(ctx, id, upd)
}

// Delete removes the profile. Deleting a missing id is not an error.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
