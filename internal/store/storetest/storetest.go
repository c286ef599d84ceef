// Package storetest provides in-memory store implementations for tests.
// They honor the same sentinel-error contract as the MongoDB stores,
// including the conditional claim semantics of ClaimForAdoption, so service
// and handler tests exercise real error paths without a database.
package storetest

import (
	"context"
	"sort"
	"sync"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/store"
)

// MemoryUserStore is an in-memory store.UserStore.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[domain.ID]*domain.User
}

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[domain.ID]*domain.User)}
}

// Create implements store.UserStore.
func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "create", "invalid user", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	if user.ID.IsZero() {
		user.ID = domain.NewID()
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

// List implements store.UserStore.
func (s *MemoryUserStore) List(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.User
	for _, user := range s.users {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// GetByID implements store.UserStore.
func (s *MemoryUserStore) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// GetByEmail implements store.UserStore. The match is case-sensitive.
func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// AddPet implements store.UserStore.
func (s *MemoryUserStore) AddPet(ctx context.Context, userID, petID domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	if !user.OwnsPet(petID) {
		user.Pets = append(user.Pets, petID)
	}
	return nil
}

// CountByEmail implements store.UserStore.
func (s *MemoryUserStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, user := range s.users {
		if user.Email == email {
			n++
		}
	}
	return n, nil
}

// MemoryPetStore is an in-memory store.PetStore.
type MemoryPetStore struct {
	mu   sync.RWMutex
	pets map[domain.ID]*domain.Pet
}

// NewMemoryPetStore creates an empty MemoryPetStore.
func NewMemoryPetStore() *MemoryPetStore {
	return &MemoryPetStore{pets: make(map[domain.ID]*domain.Pet)}
}

// Create implements store.PetStore.
func (s *MemoryPetStore) Create(ctx context.Context, pet *domain.Pet) error {
	if err := pet.Validate(); err != nil {
		return store.NewStoreError("pet", "create", "invalid pet", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if pet.ID.IsZero() {
		pet.ID = domain.NewID()
	}
	clone := *pet
	s.pets[pet.ID] = &clone
	return nil
}

// List implements store.PetStore.
func (s *MemoryPetStore) List(ctx context.Context, filter store.PetFilter) ([]domain.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Pet
	for _, pet := range s.pets {
		if filter.Species != "" && pet.Species != filter.Species {
			continue
		}
		if filter.Status != "" && pet.Status != filter.Status {
			continue
		}
		if filter.Size != "" && pet.Size != filter.Size {
			continue
		}
		if filter.Gender != "" && pet.Gender != filter.Gender {
			continue
		}
		result = append(result, *pet)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// GetByID implements store.PetStore.
func (s *MemoryPetStore) GetByID(ctx context.Context, id domain.ID) (*domain.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pet, ok := s.pets[id]
	if !ok {
		return nil, store.ErrPetNotFound
	}
	clone := *pet
	return &clone, nil
}

// Update implements store.PetStore.
func (s *MemoryPetStore) Update(ctx context.Context, id domain.ID, update store.PetUpdate) (*domain.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, ok := s.pets[id]
	if !ok {
		return nil, store.ErrPetNotFound
	}

	if update.Name != nil {
		pet.Name = *update.Name
	}
	if update.Species != nil {
		pet.Species = *update.Species
	}
	if update.Breed != nil {
		pet.Breed = *update.Breed
	}
	if update.Age != nil {
		pet.Age = *update.Age
	}
	if update.Gender != nil {
		pet.Gender = *update.Gender
	}
	if update.Size != nil {
		pet.Size = *update.Size
	}
	if update.Description != nil {
		pet.Description = *update.Description
	}
	if update.Status != nil {
		pet.Status = *update.Status
	}
	if update.Location != nil {
		loc := *update.Location
		pet.Location = &loc
	}
	if update.Images != nil {
		pet.Images = append([]string(nil), update.Images...)
	}

	clone := *pet
	return &clone, nil
}

// Delete implements store.PetStore.
func (s *MemoryPetStore) Delete(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[id]; !ok {
		return store.ErrPetNotFound
	}
	delete(s.pets, id)
	return nil
}

// ClaimForAdoption implements store.PetStore with the same
// check-and-set-in-one-step semantics as the conditional MongoDB update.
func (s *MemoryPetStore) ClaimForAdoption(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, ok := s.pets[id]
	if !ok {
		return store.ErrPetNotFound
	}
	if pet.Status == domain.StatusAdoptado {
		return store.ErrPetAlreadyAdopted
	}
	pet.Status = domain.StatusAdoptado
	return nil
}

// MemoryAdoptionStore is an in-memory store.AdoptionStore.
type MemoryAdoptionStore struct {
	mu        sync.RWMutex
	adoptions map[domain.ID]*domain.Adoption
}

// NewMemoryAdoptionStore creates an empty MemoryAdoptionStore.
func NewMemoryAdoptionStore() *MemoryAdoptionStore {
	return &MemoryAdoptionStore{adoptions: make(map[domain.ID]*domain.Adoption)}
}

// Create implements store.AdoptionStore.
func (s *MemoryAdoptionStore) Create(ctx context.Context, adoption *domain.Adoption) error {
	if err := adoption.Validate(); err != nil {
		return store.NewStoreError("adoption", "create", "invalid adoption", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if adoption.ID.IsZero() {
		adoption.ID = domain.NewID()
	}
	clone := *adoption
	s.adoptions[adoption.ID] = &clone
	return nil
}

// List implements store.AdoptionStore.
func (s *MemoryAdoptionStore) List(ctx context.Context) ([]domain.Adoption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Adoption
	for _, adoption := range s.adoptions {
		result = append(result, *adoption)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AdoptionDate.After(result[j].AdoptionDate)
	})
	return result, nil
}

// GetByID implements store.AdoptionStore.
func (s *MemoryAdoptionStore) GetByID(ctx context.Context, id domain.ID) (*domain.Adoption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	adoption, ok := s.adoptions[id]
	if !ok {
		return nil, store.ErrAdoptionNotFound
	}
	clone := *adoption
	return &clone, nil
}

// CountByPet implements store.AdoptionStore.
func (s *MemoryAdoptionStore) CountByPet(ctx context.Context, petID domain.ID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, adoption := range s.adoptions {
		if adoption.Pet == petID {
			n++
		}
	}
	return n, nil
}

// Interface conformance checks.
var (
	_ store.UserStore     = (*MemoryUserStore)(nil)
	_ store.PetStore      = (*MemoryPetStore)(nil)
	_ store.AdoptionStore = (*MemoryAdoptionStore)(nil)
)
