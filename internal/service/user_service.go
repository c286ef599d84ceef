package service

import (
	"context"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/store"
)

// UserService provides the read-only user directory. Writes go through the
// session service (registration) and the adoption workflow (owned pets).
type UserService struct {
	users store.UserStore
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns a single user. Returns store.ErrUserNotFound when absent.
func (s *UserService) Get(ctx context.Context, id domain.ID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
