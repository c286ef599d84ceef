package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/adoptme/adoptme-api/internal/domain"
)

// pathID extracts a URL parameter and parses it as a document id. The
// returned error wraps domain.ErrInvalidID, which maps to 400.
func pathID(r *http.Request, param string) (domain.ID, error) {
	return domain.ParseID(chi.URLParam(r, param))
}

// requestValidationMessage turns a validator error into a client-facing
// message naming the first offending field.
func requestValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request"
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "Incomplete values: missing " + field
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return field + " must not be negative"
	default:
		return "Invalid value for " + field
	}
}
