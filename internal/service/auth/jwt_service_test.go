package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoptme/adoptme-api/internal/config"
	"github.com/adoptme/adoptme-api/internal/domain"
)

const testSecret = "test-secret-key-that-is-long-enough!"

func testUser() *domain.User {
	return &domain.User{
		ID:    domain.NewID(),
		Email: "ana@example.com",
		Role:  domain.RoleUser,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("accepts a sufficiently long secret", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("rejects a short secret", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		})
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

	user := testUser()
	token, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.ID.Hex(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Add(time.Hour), claims.ExpiresAt)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	current := issuedAt
	svc := NewTestJWTService(testSecret, time.Hour, func() time.Time { return current })

	token, err := svc.GenerateToken(ctx, testUser())
	require.NoError(t, err)

	// Within the lifetime the token still validates.
	current = issuedAt.Add(59 * time.Minute)
	_, err = svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	// One second past expiry it does not.
	current = issuedAt.Add(time.Hour + time.Second)
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	timeFunc := func() time.Time { return now }

	issuer := NewTestJWTService(testSecret, time.Hour, timeFunc)
	verifier := NewTestJWTService("another-secret-key-also-long-enough!", time.Hour, timeFunc)

	token, err := issuer.GenerateToken(ctx, testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenMalformed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewTestJWTService(testSecret, time.Hour, time.Now)

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(ctx, garbage)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", garbage)
	}
}
