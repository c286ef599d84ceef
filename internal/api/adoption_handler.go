package api

import (
	"net/http"

	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/service"
)

// AdoptionHandler serves the adoption endpoints.
type AdoptionHandler struct {
	adoptions    *service.AdoptionService
	detailErrors bool
}

// NewAdoptionHandler creates a new AdoptionHandler with the given dependencies.
func NewAdoptionHandler(adoptions *service.AdoptionService, detailErrors bool) *AdoptionHandler {
	return &AdoptionHandler{adoptions: adoptions, detailErrors: detailErrors}
}

// Create handles POST /api/adoptions/{uid}/{pid}.
func (h *AdoptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "uid")
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}
	petID, err := pathID(r, "pid")
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	adoption, err := h.adoptions.Create(r.Context(), userID, petID)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AdoptionResponse{
		Status:  "success",
		Message: "Pet adopted",
		Payload: *adoption,
	})
}

// List handles GET /api/adoptions.
func (h *AdoptionHandler) List(w http.ResponseWriter, r *http.Request) {
	adoptions, err := h.adoptions.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}
	if adoptions == nil {
		adoptions = []service.PopulatedAdoption{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdoptionListResponse{
		Status:  "success",
		Count:   len(adoptions),
		Payload: adoptions,
	})
}

// Get handles GET /api/adoptions/{aid}.
func (h *AdoptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "aid")
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	adoption, err := h.adoptions.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdoptionResponse{
		Status:  "success",
		Payload: *adoption,
	})
}
