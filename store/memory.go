package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raushankrgupta/intern-guide-backend/models"
)

// Memory is an in-memory UserStore used by tests. It mirrors the Mongo
// implementation's semantics: unique emails, idempotent deletes and
// partial-merge updates.
type Memory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]models.User)}
}

func (m *Memory) Insert(ctx context.Context, user *models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return "", models.ErrEmailTaken
		}
	}

	user.ID = primitive.NewObjectID()
	id := user.ID.Hex()
	m.users[id] = *user
	return id, nil
}

func (m *Memory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *Memory) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	user := u
	return &user, nil
}

func (m *Memory) Update(ctx context.Context, id string, upd models.ProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil
	}

	if upd.Name != "" {
		u.Name = upd.Name
	}
	if upd.Academics != nil {
		u.Academics = upd.Academics
	}
	if upd.Hobbies != nil {
		u.Hobbies = upd.Hobbies
	}
	if upd.Skills != nil {
		u.Skills = upd.Skills
	}
	u.UpdatedAt = time.Now().UTC()

	m.users[id] = u
	return nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, id)
	return nil
}
