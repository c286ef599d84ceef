package domain

import (
	"errors"
	"time"
)

// Common adoption validation errors
var (
	ErrEmptyOwnerRef = errors.New("adoption owner reference cannot be empty")
	ErrEmptyPetRef   = errors.New("adoption pet reference cannot be empty")
)

// Adoption is the immutable join record of a completed adoption event.
// It holds raw references to the owner and pet documents, never embedded
// copies; readers build populated projections at query time.
type Adoption struct {
	ID           ID        `bson:"_id,omitempty" json:"id"`
	Owner        ID        `bson:"owner"         json:"owner"`
	Pet          ID        `bson:"pet"           json:"pet"`
	AdoptionDate time.Time `bson:"adoption_date" json:"adoption_date"`
}

// NewAdoption creates an Adoption linking owner and pet at the given time.
// Returns an error if validation fails.
func NewAdoption(owner, pet ID, date time.Time) (*Adoption, error) {
	a := &Adoption{
		Owner:        owner,
		Pet:          pet,
		AdoptionDate: date.UTC(),
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks that the Adoption references are present.
func (a *Adoption) Validate() error {
	if a.Owner.IsZero() {
		return ErrEmptyOwnerRef
	}
	if a.Pet.IsZero() {
		return ErrEmptyPetRef
	}
	return nil
}
