package middleware

import (
	"net/http"

	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/platform/logger"
)

// Operation names the protected actions role checks are declared against.
type Operation string

// Protected operations.
const (
	OpSessionCurrent Operation = "sessions:current"
	OpUserRead       Operation = "users:read"
	OpPetCreate      Operation = "pets:create"
	OpPetUpdate      Operation = "pets:update"
	OpPetDelete      Operation = "pets:delete"
	OpAdoptionCreate Operation = "adoptions:create"
	OpAdoptionRead   Operation = "adoptions:read"
	OpMockGeneration Operation = "mocks:generate"
)

// Policy is the declarative role table: operation → roles allowed to run it.
// Role checks live here rather than scattered per route, so the full access
// model is visible in one place.
type Policy map[Operation][]domain.Role

// DefaultPolicy returns the access model of the adoption platform. Every
// authenticated role may run the regular operations; mock-data generation
// is restricted to admins.
func DefaultPolicy() Policy {
	anyAuthenticated := []domain.Role{domain.RoleUser, domain.RoleAdmin}
	return Policy{
		OpSessionCurrent: anyAuthenticated,
		OpUserRead:       anyAuthenticated,
		OpPetCreate:      anyAuthenticated,
		OpPetUpdate:      anyAuthenticated,
		OpPetDelete:      anyAuthenticated,
		OpAdoptionCreate: anyAuthenticated,
		OpAdoptionRead:   anyAuthenticated,
		OpMockGeneration: {domain.RoleAdmin},
	}
}

// Allows reports whether the role may run the operation. Operations missing
// from the table are denied for every role.
func (p Policy) Allows(op Operation, role domain.Role) bool {
	for _, allowed := range p[op] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Require returns middleware enforcing the policy for one operation. It must
// run after Authenticate, which puts the caller identity into the context.
func (p Policy) Require(op Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := shared.IdentityFromContext(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication token required")
				return
			}

			if !p.Allows(op, identity.Role) {
				logger.FromContext(r.Context()).Warn("operation forbidden for role",
					"operation", string(op),
					"role", string(identity.Role),
					"user_id", identity.ID.Hex())
				shared.RespondWithError(w, r, http.StatusForbidden,
					"You do not have permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
