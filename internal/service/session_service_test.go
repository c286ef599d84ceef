package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/service/auth"
	"github.com/adoptme/adoptme-api/internal/store"
	"github.com/adoptme/adoptme-api/internal/store/storetest"
)

const sessionTestSecret = "session-test-secret-long-enough-key!"

func newSessionFixture(t *testing.T) (*SessionService, *storetest.MemoryUserStore) {
	t.Helper()

	users := storetest.NewMemoryUserStore()
	jwt := auth.NewTestJWTService(sessionTestSecret, time.Hour, time.Now)
	sessions := NewSessionService(users, jwt, auth.NewBcryptHasher(), auth.NewBcryptVerifier())
	return sessions, users
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user with hashed password and user role", func(t *testing.T) {
		t.Parallel()

		sessions, users := newSessionFixture(t)
		ctx := context.Background()

		id, err := sessions.Register(ctx, "Ana", "García", "ana@example.com", "pw123456")
		require.NoError(t, err)
		require.False(t, id.IsZero())

		stored, err := users.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, stored.Role)
		assert.NotEqual(t, "pw123456", stored.HashedPassword)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.Empty(t, stored.Pets)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		t.Parallel()

		sessions, users := newSessionFixture(t)
		ctx := context.Background()

		_, err := sessions.Register(ctx, "Ana", "García", "dup@example.com", "pw123456")
		require.NoError(t, err)

		_, err = sessions.Register(ctx, "Otra", "Persona", "dup@example.com", "pw123456")
		assert.ErrorIs(t, err, store.ErrEmailExists)

		// The failed attempt stored nothing; the count stays at one.
		count, err := users.CountByEmail(ctx, "dup@example.com")
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("rejects out-of-policy passwords", func(t *testing.T) {
		t.Parallel()

		sessions, _ := newSessionFixture(t)
		ctx := context.Background()

		_, err := sessions.Register(ctx, "Ana", "García", "short@example.com", "pw123")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		sessions, _ := newSessionFixture(t)
		ctx := context.Background()

		_, err := sessions.Register(ctx, "", "García", "nofirst@example.com", "pw123456")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("issues token for valid credentials", func(t *testing.T) {
		t.Parallel()

		sessions, _ := newSessionFixture(t)
		ctx := context.Background()

		id, err := sessions.Register(ctx, "Ana", "García", "ana@example.com", "pw123456")
		require.NoError(t, err)

		token, user, err := sessions.Login(ctx, "ana@example.com", "pw123456")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, id, user.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		sessions, _ := newSessionFixture(t)
		ctx := context.Background()

		_, err := sessions.Register(ctx, "Ana", "García", "ana@example.com", "pw123456")
		require.NoError(t, err)

		_, _, errUnknown := sessions.Login(ctx, "nobody@example.com", "pw123456")
		_, _, errWrongPw := sessions.Login(ctx, "ana@example.com", "wrong-password")

		assert.ErrorIs(t, errUnknown, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, auth.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})

	t.Run("email match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		sessions, _ := newSessionFixture(t)
		ctx := context.Background()

		_, err := sessions.Register(ctx, "Ana", "García", "Ana@Example.com", "pw123456")
		require.NoError(t, err)

		_, _, err = sessions.Login(ctx, "ana@example.com", "pw123456")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	t.Run("resolves token to stored user", func(t *testing.T) {
		t.Parallel()

		sessions, _ := newSessionFixture(t)
		ctx := context.Background()

		id, err := sessions.Register(ctx, "Ana", "García", "ana@example.com", "pw123456")
		require.NoError(t, err)

		token, _, err := sessions.Login(ctx, "ana@example.com", "pw123456")
		require.NoError(t, err)

		user, err := sessions.Current(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		sessions, _ := newSessionFixture(t)

		_, err := sessions.Current(context.Background(), "")
		assert.ErrorIs(t, err, auth.ErrMissingToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		sessions, _ := newSessionFixture(t)

		_, err := sessions.Current(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token for a vanished user", func(t *testing.T) {
		t.Parallel()

		users := storetest.NewMemoryUserStore()
		jwt := auth.NewTestJWTService(sessionTestSecret, time.Hour, time.Now)
		sessions := NewSessionService(users, jwt, auth.NewBcryptHasher(), auth.NewBcryptVerifier())
		ctx := context.Background()

		// Sign a token for a user that was never stored.
		ghost := &domain.User{ID: domain.NewID(), Email: "ghost@example.com", Role: domain.RoleUser}
		token, err := jwt.GenerateToken(ctx, ghost)
		require.NoError(t, err)

		_, err = sessions.Current(ctx, token)
		assert.ErrorIs(t, err, auth.ErrUserGone)
	})
}
