package store

import (
	"context"

	"github.com/adoptme/adoptme-api/internal/domain"
)

// AdoptionStore defines the interface for adoption record persistence.
// Adoptions are created exclusively by the adoption workflow and are
// immutable afterwards, so there is no update operation.
type AdoptionStore interface {
	// Create saves a new adoption record and fills in the generated ID.
	// Returns ErrInvalidEntity wrapping the domain error if the record is invalid.
	Create(ctx context.Context, adoption *domain.Adoption) error

	// List returns all adoption records, newest first.
	List(ctx context.Context) ([]domain.Adoption, error)

	// GetByID retrieves an adoption record by its unique ID.
	// Returns ErrAdoptionNotFound if the record does not exist.
	GetByID(ctx context.Context, id domain.ID) (*domain.Adoption, error)

	// CountByPet returns the number of adoption records referencing the pet.
	// Exposed for the one-adoption-per-pet invariant checks.
	CountByPet(ctx context.Context, petID domain.ID) (int64, error)
}
