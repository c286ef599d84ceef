package api

import (
	"net/http"

	"github.com/adoptme/adoptme-api/internal/api/shared"
	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/service"
	"github.com/adoptme/adoptme-api/internal/store"
)

// PetHandler serves the pet CRUD endpoints.
type PetHandler struct {
	pets         *service.PetService
	detailErrors bool
}

// NewPetHandler creates a new PetHandler with the given dependencies.
func NewPetHandler(pets *service.PetService, detailErrors bool) *PetHandler {
	return &PetHandler{pets: pets, detailErrors: detailErrors}
}

// List handles GET /api/pets. Species, status, size and gender query
// parameters narrow the result; an unknown value simply matches nothing.
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.PetFilter{
		Species: domain.Species(q.Get("species")),
		Status:  domain.PetStatus(q.Get("status")),
		Size:    domain.Size(q.Get("size")),
		Gender:  domain.Gender(q.Get("gender")),
	}

	pets, err := h.pets.List(r.Context(), filter)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}
	if pets == nil {
		pets = []domain.Pet{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PetListResponse{
		Status:  "success",
		Payload: pets,
		Total:   len(pets),
	})
}

// Get handles GET /api/pets/{pid}.
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "pid")
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	pet, err := h.pets.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PetResponse{
		Status:  "success",
		Payload: *pet,
	})
}

// Create handles POST /api/pets.
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, requestValidationMessage(err))
		return
	}

	pet, err := h.pets.Create(r.Context(), service.PetInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Age:         int(req.Age),
		Gender:      req.Gender,
		Size:        req.Size,
		Description: req.Description,
		Status:      req.Status,
		Location:    req.Location,
		Images:      req.Images,
	})
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, PetResponse{
		Status:  "success",
		Message: "Pet created",
		Payload: *pet,
	})
}

// Update handles PATCH /api/pets/{pid}. Only the allow-listed fields in
// UpdatePetRequest can reach the stored document; absent fields keep their
// current value.
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "pid")
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	var req UpdatePetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, requestValidationMessage(err))
		return
	}

	update := store.PetUpdate{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Gender:      req.Gender,
		Size:        req.Size,
		Description: req.Description,
		Status:      req.Status,
		Location:    req.Location,
		Images:      req.Images,
	}
	if req.Age != nil {
		age := int(*req.Age)
		update.Age = &age
	}

	pet, err := h.pets.Update(r.Context(), id, update)
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PetResponse{
		Status:  "success",
		Message: "Pet updated",
		Payload: *pet,
	})
}

// Delete handles DELETE /api/pets/{pid}.
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "pid")
	if err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	if err := h.pets.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, r, err, h.detailErrors)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
