package service

import (
	"context"
	"time"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/platform/logger"
	"github.com/adoptme/adoptme-api/internal/store"
)

// timeNowUTC is the service clock, injectable for deterministic tests.
var timeNowUTC = func() time.Time { return time.Now().UTC() }

// OwnerSummary is the inline owner projection embedded in adoption reads.
type OwnerSummary struct {
	ID    domain.ID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// PetSummary is the inline pet projection embedded in adoption reads.
// Age and Gender are only populated on single-record reads.
type PetSummary struct {
	ID      domain.ID      `json:"id"`
	Name    string         `json:"name"`
	Species domain.Species `json:"species"`
	Breed   string         `json:"breed"`
	Age     *int           `json:"age,omitempty"`
	Gender  *domain.Gender `json:"gender,omitempty"`
}

// PopulatedAdoption is the read-time shape of an adoption record with its
// foreign-key references replaced by inline summaries.
type PopulatedAdoption struct {
	ID           domain.ID    `json:"id"`
	AdoptionDate time.Time    `json:"adoption_date"`
	Owner        OwnerSummary `json:"owner"`
	Pet          PetSummary   `json:"pet"`
}

// AdoptionService orchestrates the multi-entity state transition performed
// when a user adopts a pet.
type AdoptionService struct {
	users     store.UserStore
	pets      store.PetStore
	adoptions store.AdoptionStore
}

// NewAdoptionService creates a new AdoptionService with the given dependencies.
func NewAdoptionService(
	users store.UserStore,
	pets store.PetStore,
	adoptions store.AdoptionStore,
) *AdoptionService {
	return &AdoptionService{
		users:     users,
		pets:      pets,
		adoptions: adoptions,
	}
}

// Create runs the adoption workflow:
//
//  1. Resolve the user (store.ErrUserNotFound).
//  2. Resolve the pet (store.ErrPetNotFound).
//  3. Claim the pet with a single conditional status update; a pet that is
//     already Adoptado, including one that lost a concurrent race, yields
//     store.ErrPetAlreadyAdopted and nothing is written.
//  4. Append the pet to the user's owned-pets list.
//  5. Persist the adoption record with the current timestamp.
//
// The claim must precede the adoption insert so no Adoption record can ever
// reference a still-available pet. There is no compensating rollback: a
// failure between steps leaves the already-applied writes in place, matching
// the store-as-source-of-truth model.
func (s *AdoptionService) Create(ctx context.Context, userID, petID domain.ID) (*PopulatedAdoption, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if err := s.pets.ClaimForAdoption(ctx, petID); err != nil {
		return nil, err
	}

	if err := s.users.AddPet(ctx, userID, petID); err != nil {
		return nil, err
	}

	adoption, err := domain.NewAdoption(userID, petID, timeNowUTC())
	if err != nil {
		return nil, err
	}
	if err := s.adoptions.Create(ctx, adoption); err != nil {
		return nil, err
	}

	log.Info("adoption created",
		"adoption_id", adoption.ID.Hex(),
		"user_id", userID.Hex(),
		"pet_id", petID.Hex())

	return &PopulatedAdoption{
		ID:           adoption.ID,
		AdoptionDate: adoption.AdoptionDate,
		Owner: OwnerSummary{
			ID:    user.ID,
			Name:  user.FullName(),
			Email: user.Email,
		},
		Pet: PetSummary{
			ID:      pet.ID,
			Name:    pet.Name,
			Species: pet.Species,
			Breed:   pet.Breed,
		},
	}, nil
}

// List returns all adoption records as populated projections.
func (s *AdoptionService) List(ctx context.Context) ([]PopulatedAdoption, error) {
	adoptions, err := s.adoptions.List(ctx)
	if err != nil {
		return nil, err
	}

	populated := make([]PopulatedAdoption, 0, len(adoptions))
	for _, adoption := range adoptions {
		p, err := s.populate(ctx, &adoption, false)
		if err != nil {
			return nil, err
		}
		populated = append(populated, *p)
	}
	return populated, nil
}

// Get returns a single adoption record as a populated projection.
// The pet summary additionally carries age and gender on this path.
func (s *AdoptionService) Get(ctx context.Context, id domain.ID) (*PopulatedAdoption, error) {
	adoption, err := s.adoptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, adoption, true)
}

// populate re-reads the referenced user and pet and builds the projection.
// References are raw ids, so a record whose owner or pet has since vanished
// surfaces the store's not-found error rather than a half-empty projection.
func (s *AdoptionService) populate(ctx context.Context, adoption *domain.Adoption, detailed bool) (*PopulatedAdoption, error) {
	user, err := s.users.GetByID(ctx, adoption.Owner)
	if err != nil {
		return nil, err
	}

	pet, err := s.pets.GetByID(ctx, adoption.Pet)
	if err != nil {
		return nil, err
	}

	summary := PetSummary{
		ID:      pet.ID,
		Name:    pet.Name,
		Species: pet.Species,
		Breed:   pet.Breed,
	}
	if detailed {
		age := pet.Age
		gender := pet.Gender
		summary.Age = &age
		summary.Gender = &gender
	}

	return &PopulatedAdoption{
		ID:           adoption.ID,
		AdoptionDate: adoption.AdoptionDate,
		Owner: OwnerSummary{
			ID:    user.ID,
			Name:  user.FullName(),
			Email: user.Email,
		},
		Pet: summary,
	}, nil
}
