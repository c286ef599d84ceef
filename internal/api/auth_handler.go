package api

import (
	"net/http"

	"github.com/adoptme/adoptme-api/internal/api/middleware"
	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/platform/logger"
	"github.com/adoptme/adoptme-api/internal/service"
)

// AuthHandler serves the session endpoints: register, login and current.
type AuthHandler struct {
	sessions     *service.SessionService
	detailErrors bool
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// detailErrors controls whether internal error detail is echoed in
// responses; enable it only in development.
func NewAuthHandler(sessions *service.SessionService, detailErrors bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, detailErrors: detailErrors}
}

// Register handles POST /api/sessions/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, requestValidationMessage(err))
		return
	}

	id, err := h.sessions.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RegisterResponse{
		Status:  "success",
		Payload: id.Hex(),
	})
}

// Login handles POST /api/sessions/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, requestValidationMessage(err))
		return
	}

	token, user, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	logger.FromContext(r.Context()).Info("user logged in", "user_id", user.ID.Hex())

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Status: "success",
		Token:  token,
		User:   NewUserView(user),
	})
}

// Current handles GET /api/sessions/current. The token is re-resolved
// against the store, so the response reflects the stored user including its
// owned-pets list rather than the claims snapshot.
func (h *AuthHandler) Current(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.ExtractBearerToken(r)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	user, err := h.sessions.Current(r.Context(), token)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CurrentResponse{
		Status: "success",
		Data:   NewUserView(user),
	})
}
