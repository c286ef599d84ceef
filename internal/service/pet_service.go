package service

import (
	"context"
	"fmt"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/platform/logger"
	"github.com/adoptme/adoptme-api/internal/store"
)

// PetInput is the partial create payload for a pet. Missing optional fields
// are filled with defaults (breed "Mestizo", gender "Desconocido", size
// "Mediano", status "Disponible") before persisting.
type PetInput struct {
	Name        string
	Species     domain.Species
	Breed       string
	Age         int
	Gender      domain.Gender
	Size        domain.Size
	Description string
	Status      domain.PetStatus
	Location    *domain.Location
	Images      []string
}

// PetService provides the pet CRUD workflows, isolating handlers from the
// storage representation and owning the create-time defaulting rules.
type PetService struct {
	pets store.PetStore
}

// NewPetService creates a new PetService with the given dependencies.
func NewPetService(pets store.PetStore) *PetService {
	return &PetService{pets: pets}
}

// Create persists a new pet, defaulting any missing optional fields.
func (s *PetService) Create(ctx context.Context, input PetInput) (*domain.Pet, error) {
	pet := newPetFromInput(input)
	if err := pet.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("pet created",
		"pet_id", pet.ID.Hex(),
		"species", pet.Species)
	return pet, nil
}

// List returns pets matching the optional filters.
func (s *PetService) List(ctx context.Context, filter store.PetFilter) ([]domain.Pet, error) {
	return s.pets.List(ctx, filter)
}

// Get returns a single pet. Returns store.ErrPetNotFound when absent;
// callers must not treat an absent record as silently empty.
func (s *PetService) Get(ctx context.Context, id domain.ID) (*domain.Pet, error) {
	return s.pets.GetByID(ctx, id)
}

// Update applies a partial update. Fields absent from the update are left
// unchanged; the allow-list is enforced by the PetUpdate shape itself.
func (s *PetService) Update(ctx context.Context, id domain.ID, update store.PetUpdate) (*domain.Pet, error) {
	if update.Empty() {
		// Nothing to change; return the current document.
		return s.pets.GetByID(ctx, id)
	}
	if err := validatePetUpdate(update); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return s.pets.Update(ctx, id, update)
}

// Delete removes a pet. Returns store.ErrPetNotFound when absent.
func (s *PetService) Delete(ctx context.Context, id domain.ID) error {
	if err := s.pets.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("pet deleted", "pet_id", id.Hex())
	return nil
}

// newPetFromInput builds a Pet from a partial input, applying defaults.
func newPetFromInput(input PetInput) *domain.Pet {
	pet := &domain.Pet{
		Name:        input.Name,
		Species:     input.Species,
		Breed:       input.Breed,
		Age:         input.Age,
		Gender:      input.Gender,
		Size:        input.Size,
		Description: input.Description,
		Status:      input.Status,
		Location:    input.Location,
		Images:      input.Images,
	}

	if pet.Species == "" {
		pet.Species = domain.SpeciesOtro
	}
	if pet.Breed == "" {
		pet.Breed = domain.DefaultBreed
	}
	if pet.Gender == "" {
		pet.Gender = domain.DefaultGender
	}
	if pet.Size == "" {
		pet.Size = domain.DefaultSize
	}
	if pet.Status == "" {
		pet.Status = domain.DefaultStatus
	}

	now := timeNowUTC()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	return pet
}

// validatePetUpdate checks enum values present in a partial update.
func validatePetUpdate(update store.PetUpdate) error {
	if update.Name != nil && *update.Name == "" {
		return domain.ErrEmptyPetName
	}
	if update.Species != nil && !update.Species.Valid() {
		return domain.ErrInvalidSpecies
	}
	if update.Age != nil && *update.Age < 0 {
		return domain.ErrNegativeAge
	}
	if update.Gender != nil && !update.Gender.Valid() {
		return domain.ErrInvalidGender
	}
	if update.Size != nil && !update.Size.Valid() {
		return domain.ErrInvalidSize
	}
	if update.Status != nil && !update.Status.Valid() {
		return domain.ErrInvalidStatus
	}
	return nil
}
