package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/service/auth"
	"github.com/adoptme/adoptme-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: age", domain.ErrValidation), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"duplicate email", store.ErrEmailExists, http.StatusBadRequest},
		{"already adopted", store.ErrPetAlreadyAdopted, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"user gone", auth.ErrUserGone, http.StatusUnauthorized},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"pet not found", store.ErrPetNotFound, http.StatusNotFound},
		{"adoption not found", store.ErrAdoptionNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "User already exists", GetSafeErrorMessage(store.ErrEmailExists))
	assert.Equal(t, "The pet has already been adopted", GetSafeErrorMessage(store.ErrPetAlreadyAdopted))
	assert.Equal(t, "Pet not found", GetSafeErrorMessage(store.ErrPetNotFound))
	assert.Equal(t, "Invalid credentials", GetSafeErrorMessage(auth.ErrInvalidCredentials))

	// Internal detail never leaks for unknown errors.
	leaky := errors.New("dial tcp 10.0.0.5:27017: connection refused")
	msg := GetSafeErrorMessage(leaky)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "10.0.0.5")
}
