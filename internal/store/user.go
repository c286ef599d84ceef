package store

import (
	"context"

	"github.com/adoptme/adoptme-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and fills in the generated ID.
	// Returns ErrEmailExists if the email is already taken.
	// Returns ErrInvalidEntity wrapping the domain error if the user is invalid.
	Create(ctx context.Context, user *domain.User) error

	// List returns all users, newest first.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id domain.ID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address. The match is exact
	// against the stored value (case-sensitive).
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// AddPet appends a pet reference to the user's owned-pets list.
	// Returns ErrUserNotFound if the user does not exist. Adding the same
	// pet twice is a no-op at the document level.
	AddPet(ctx context.Context, userID, petID domain.ID) error

	// CountByEmail returns the number of users stored with the given email.
	// Under the unique index this is 0 or 1; exposed for invariant checks.
	CountByEmail(ctx context.Context, email string) (int64, error)
}
