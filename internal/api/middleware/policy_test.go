package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/domain"
)

func TestPolicyAllows(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()

	assert.True(t, policy.Allows(OpPetCreate, domain.RoleUser))
	assert.True(t, policy.Allows(OpPetCreate, domain.RoleAdmin))
	assert.True(t, policy.Allows(OpUserRead, domain.RoleUser))
	assert.True(t, policy.Allows(OpAdoptionCreate, domain.RoleUser))

	// Mock generation is admin-only.
	assert.False(t, policy.Allows(OpMockGeneration, domain.RoleUser))
	assert.True(t, policy.Allows(OpMockGeneration, domain.RoleAdmin))

	// Unknown operations are denied for everyone.
	assert.False(t, policy.Allows(Operation("pets:purge"), domain.RoleAdmin))
}

func TestPolicyRequire(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(t *testing.T, op Operation, identity *shared.Identity) *httptest.ResponseRecorder {
		t.Helper()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if identity != nil {
			req = req.WithContext(shared.WithIdentity(req.Context(), *identity))
		}
		rec := httptest.NewRecorder()
		policy.Require(op)(next).ServeHTTP(rec, req)
		return rec
	}

	t.Run("no identity", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, OpPetCreate, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("allowed role", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, OpPetCreate, &shared.Identity{ID: domain.NewID(), Role: domain.RoleUser})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbidden role", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, OpMockGeneration, &shared.Identity{ID: domain.NewID(), Role: domain.RoleUser})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
