package api

import (
	"errors"
	"net/http"

	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/service/auth"
	"github.com/adoptme/adoptme-api/internal/store"
)

// MapErrorToStatusCode is the single mapping point from internal errors to
// HTTP status codes. Handlers never pick status codes ad hoc.
func MapErrorToStatusCode(err error) int {
	switch {
	// 400 Bad Request
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrPetAlreadyAdopted):
		return http.StatusBadRequest

	// 401 Unauthorized
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrUserGone),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// 403 Forbidden
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden

	// 404 Not Found
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for the error. Internal
// detail never leaks through this function; unknown errors collapse to a
// generic message.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "User already exists"
	case errors.Is(err, store.ErrPetAlreadyAdopted):
		return "The pet has already been adopted"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication token required"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"
	case errors.Is(err, auth.ErrUserGone):
		return "The user belonging to this token no longer exists"
	case errors.Is(err, auth.ErrForbidden):
		return "You do not have permission to perform this action"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrPetNotFound):
		return "Pet not found"
	case errors.Is(err, store.ErrAdoptionNotFound):
		return "Adoption not found"
	case store.IsNotFoundError(err):
		return "Resource not found"
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request"
	case errors.Is(err, domain.ErrValidation):
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return verr.Error()
		}
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError maps the error to a status and safe message, attaches
// internal detail only when detail reporting is enabled, and writes the
// response. 5xx responses are logged at ERROR with the original error.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error, includeDetail bool) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	detail := ""
	if includeDetail {
		detail = err.Error()
	}

	shared.RespondWithErrorAndLog(w, r, status, message, detail, err)
}
