package store

import (
	"context"

	"github.com/adoptme/adoptme-api/internal/domain"
)

// PetFilter narrows List results. Zero-valued fields are ignored.
type PetFilter struct {
	Species domain.Species
	Status  domain.PetStatus
	Size    domain.Size
	Gender  domain.Gender
}

// PetUpdate is the partial update document for a pet. Nil fields are left
// unchanged; only fields on the explicit allow-list appear here at all.
type PetUpdate struct {
	Name        *string
	Species     *domain.Species
	Breed       *string
	Age         *int
	Gender      *domain.Gender
	Size        *domain.Size
	Description *string
	Status      *domain.PetStatus
	Location    *domain.Location
	Images      []string
}

// Empty reports whether the update would change nothing.
func (u PetUpdate) Empty() bool {
	return u.Name == nil && u.Species == nil && u.Breed == nil && u.Age == nil &&
		u.Gender == nil && u.Size == nil && u.Description == nil && u.Status == nil &&
		u.Location == nil && u.Images == nil
}

// PetStore defines the interface for pet data persistence.
type PetStore interface {
	// Create saves a new pet to the store and fills in the generated ID.
	// Returns ErrInvalidEntity wrapping the domain error if the pet is invalid.
	Create(ctx context.Context, pet *domain.Pet) error

	// List returns all pets matching the filter, newest first.
	List(ctx context.Context, filter PetFilter) ([]domain.Pet, error)

	// GetByID retrieves a pet by its unique ID.
	// Returns ErrPetNotFound if the pet does not exist.
	GetByID(ctx context.Context, id domain.ID) (*domain.Pet, error)

	// Update applies a partial update to a pet.
	// Returns ErrPetNotFound if the pet does not exist.
	Update(ctx context.Context, id domain.ID, update PetUpdate) (*domain.Pet, error)

	// Delete removes a pet from the store.
	// Returns ErrPetNotFound if the pet does not exist.
	Delete(ctx context.Context, id domain.ID) error

	// ClaimForAdoption transitions the pet's status to Adoptado with a single
	// conditional update guarded by "status is not already Adoptado". This is
	// the race guard for the adoption workflow: of two concurrent claims for
	// the same pet exactly one succeeds.
	// Returns ErrPetNotFound if the pet does not exist and ErrPetAlreadyAdopted
	// if the guard matched zero documents.
	ClaimForAdoption(ctx context.Context, id domain.ID) error
}
