// Package store abstracts the user document collection so services can be
// wired against MongoDB in production and an in-memory fake in tests.
package store

import (
	"context"

	"github.com/raushankrgupta/intern-guide-backend/models"
)

// UserStore is the persistence interface for user documents.
type UserStore interface {
	// Insert stores a new user and returns its assigned id.
	// Returns models.ErrEmailTaken if the email is already registered.
	Insert(ctx context.Context, user *models.User) (string, error)

	// FindByEmail returns the user with the given email, or models.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID returns the user with the given id, or models.ErrNotFound.
	// A malformed id is also reported as models.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.User, error)

	// Update merges the present fields of upd into the stored document and
	// refreshes updated_at. Updating a missing id is not an error.
	Update(ctx context.Context, id string, upd models.ProfileUpdate) error

	// Delete removes the user document. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
