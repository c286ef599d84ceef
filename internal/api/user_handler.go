package api

import (
	"net/http"

	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/service"
)

// UserHandler serves the read-only user directory endpoints. Responses carry
// the public-safe UserView projection only; the password hash has no field
// on that shape.
type UserHandler struct {
	users        *service.UserService
	detailErrors bool
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users *service.UserService, detailErrors bool) *UserHandler {
	return &UserHandler{users: users, detailErrors: detailErrors}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserListResponse{
		Status:  "success",
		Payload: views,
		Total:   len(views),
	})
}

// Get handles GET /api/users/{uid}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "uid")
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{
		Status:  "success",
		Payload: NewUserView(user),
	})
}
