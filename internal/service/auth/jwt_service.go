package auth

import (
	"context"
	"time"

	"github.com/adoptme/adoptme-api/internal/domain"
)

// JWTService defines operations for managing JWT bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token carrying the user's
	// identity (id, email, role). The password hash never enters the payload.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims containing the caller identity if the token is valid,
	// or ErrExpiredToken / ErrInvalidToken when validation fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity encoded in a bearer token.
type Claims struct {
	// UserID is the hex identifier of the user the token was issued for.
	UserID string `json:"uid,omitempty"`

	// Email is the user's email at issue time.
	Email string `json:"email,omitempty"`

	// Role is the user's role at issue time; authorization decisions use it
	// without another store round trip.
	Role domain.Role `json:"role,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
