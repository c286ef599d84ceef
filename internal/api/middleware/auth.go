package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/platform/logger"
	"github.com/adoptme/adoptme-api/internal/redact"
	"github.com/adoptme/adoptme-api/internal/service"
	"github.com/adoptme/adoptme-api/internal/service/auth"
)

// AuthMiddleware provides bearer-token authentication for routes.
// Beyond validating the token it resolves the encoded user against the
// store, so a token for a deleted user is rejected with 401.
type AuthMiddleware struct {
	sessions *service.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(sessions *service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// ExtractBearerToken pulls the token out of an Authorization header.
// Returns auth.ErrMissingToken when the header is absent or not Bearer-shaped.
func ExtractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrMissingToken
	}

	return parts[1], nil
}

// Authenticate validates the bearer token from the Authorization header,
// resolves the caller and adds the identity to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := ExtractBearerToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication token required")
			return
		}

		user, err := m.sessions.Current(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			case errors.Is(err, auth.ErrUserGone):
				shared.RespondWithError(w, r, http.StatusUnauthorized,
					"The user belonging to this token no longer exists")
			default:
				logger.FromContext(r.Context()).
					Error("failed to authenticate request", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
