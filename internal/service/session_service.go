package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/platform/logger"
	"github.com/adoptme/adoptme-api/internal/service/auth"
	"github.com/adoptme/adoptme-api/internal/store"
)

// SessionService turns credentials into a verifiable caller identity.
// Registration hashes the password before anything is persisted; login and
// Current never reveal whether an email is registered.
type SessionService struct {
	users    store.UserStore
	jwt      auth.JWTService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
}

// NewSessionService creates a new SessionService with the given dependencies.
func NewSessionService(
	users store.UserStore,
	jwt auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *SessionService {
	return &SessionService{
		users:    users,
		jwt:      jwt,
		hasher:   hasher,
		verifier: verifier,
	}
}

// Register creates a new user with role "user" and returns its identifier.
// Returns a domain validation error when a field is empty or the password is
// out of policy, and store.ErrEmailExists when the email is already taken.
func (s *SessionService) Register(
	ctx context.Context,
	firstName, lastName, email, password string,
) (domain.ID, error) {
	if err := domain.ValidatePassword(password); err != nil {
		return domain.NilID, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return domain.NilID, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(firstName, lastName, email, hashed)
	if err != nil {
		return domain.NilID, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.NilID, err
	}

	logger.FromContext(ctx).Info("user registered", "user_id", user.ID.Hex())
	return user.ID, nil
}

// Login verifies the credentials and issues a signed, time-limited bearer
// token alongside the user. An unknown email and a wrong password both
// produce auth.ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", nil, auth.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return "", nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// Current resolves a bearer token to the stored user it was issued for.
// Returns auth.ErrMissingToken, the jwt validation errors, or auth.ErrUserGone
// when the encoded id no longer resolves to a user.
func (s *SessionService) Current(ctx context.Context, tokenString string) (*domain.User, error) {
	if tokenString == "" {
		return nil, auth.ErrMissingToken
	}

	claims, err := s.jwt.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	id, err := domain.ParseID(claims.UserID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, auth.ErrUserGone
		}
		return nil, err
	}

	return user, nil
}
