package users

import (
	"context"
	"errors"
	"sync"

	"github.com/akarpov87/authgate/internal/common"
	"github.com/akarpov87/authgate/internal/server/models"
)

var ErrAlreadyExists = errors.New("username already exists")

// MemoryRepository is a mutex-guarded in-process store. It is the default
// backend and mirrors the fixture-map deployment model: populated once at
// startup, read-only afterwards.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

// NewMemoryRepositoryFromFixture seeds a store from a fixed set of records.
func NewMemoryRepositoryFromFixture(fixture []models.User) *MemoryRepository {
	r := NewMemoryRepository()
	for i := range fixture {
		r.users[fixture[i].Username] = fixture[i]
	}
	return r
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return nil, ErrAlreadyExists
	}
	r.users[user.Username] = *user
	return user, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return common.ErrorNotFound
	}
	delete(r.users, username)
	return nil
}
