package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoptme/adoptme-api/internal/domain"
	"github.com/adoptme/adoptme-api/internal/store"
	"github.com/adoptme/adoptme-api/internal/store/storetest"
)

type adoptionFixture struct {
	users     *storetest.MemoryUserStore
	pets      *storetest.MemoryPetStore
	adoptions *storetest.MemoryAdoptionStore
	svc       *AdoptionService
}

func newAdoptionFixture(t *testing.T) *adoptionFixture {
	t.Helper()

	f := &adoptionFixture{
		users:     storetest.NewMemoryUserStore(),
		pets:      storetest.NewMemoryPetStore(),
		adoptions: storetest.NewMemoryAdoptionStore(),
	}
	f.svc = NewAdoptionService(f.users, f.pets, f.adoptions)
	return f
}

func (f *adoptionFixture) addUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Ana", "García", "ana"+domain.NewID().Hex()+"@example.com", "hashed")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *adoptionFixture) addPet(t *testing.T, status domain.PetStatus) *domain.Pet {
	t.Helper()

	now := time.Now().UTC()
	pet := &domain.Pet{
		Name:      "Luna",
		Species:   domain.SpeciesPerro,
		Breed:     "Mestizo",
		Age:       3,
		Gender:    domain.GenderHembra,
		Size:      domain.SizeMediano,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.pets.Create(context.Background(), pet))
	return pet
}

func TestAdoptionCreate(t *testing.T) {
	t.Parallel()

	t.Run("completes the full workflow", func(t *testing.T) {
		t.Parallel()

		f := newAdoptionFixture(t)
		ctx := context.Background()
		user := f.addUser(t)
		pet := f.addPet(t, domain.StatusDisponible)

		adoption, err := f.svc.Create(ctx, user.ID, pet.ID)
		require.NoError(t, err)

		assert.False(t, adoption.ID.IsZero())
		assert.Equal(t, user.ID, adoption.Owner.ID)
		assert.Equal(t, "Ana García", adoption.Owner.Name)
		assert.Equal(t, pet.ID, adoption.Pet.ID)
		assert.Equal(t, "Luna", adoption.Pet.Name)
		assert.False(t, adoption.AdoptionDate.IsZero())

		// The pet is now adopted.
		storedPet, err := f.pets.GetByID(ctx, pet.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAdoptado, storedPet.Status)

		// The pet appears in the owner's list.
		storedUser, err := f.users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, storedUser.OwnsPet(pet.ID))

		// Exactly one adoption record references the pet.
		count, err := f.adoptions.CountByPet(ctx, pet.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("reserved pets can still be adopted", func(t *testing.T) {
		t.Parallel()

		f := newAdoptionFixture(t)
		user := f.addUser(t)
		pet := f.addPet(t, domain.StatusReservado)

		_, err := f.svc.Create(context.Background(), user.ID, pet.ID)
		require.NoError(t, err)
	})

	t.Run("second adoption of the same pet fails and writes nothing", func(t *testing.T) {
		t.Parallel()

		f := newAdoptionFixture(t)
		ctx := context.Background()
		first := f.addUser(t)
		second := f.addUser(t)
		pet := f.addPet(t, domain.StatusDisponible)

		_, err := f.svc.Create(ctx, first.ID, pet.ID)
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, second.ID, pet.ID)
		assert.ErrorIs(t, err, store.ErrPetAlreadyAdopted)

		// Still exactly one record, and the loser's pets list is untouched.
		count, err := f.adoptions.CountByPet(ctx, pet.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		loser, err := f.users.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.False(t, loser.OwnsPet(pet.ID))
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		f := newAdoptionFixture(t)
		pet := f.addPet(t, domain.StatusDisponible)

		_, err := f.svc.Create(context.Background(), domain.NewID(), pet.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		// The pet stays available.
		stored, err := f.pets.GetByID(context.Background(), pet.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDisponible, stored.Status)
	})

	t.Run("unknown pet", func(t *testing.T) {
		t.Parallel()

		f := newAdoptionFixture(t)
		user := f.addUser(t)

		_, err := f.svc.Create(context.Background(), user.ID, domain.NewID())
		assert.ErrorIs(t, err, store.ErrPetNotFound)
	})
}

func TestAdoptionListAndGet(t *testing.T) {
	t.Parallel()

	f := newAdoptionFixture(t)
	ctx := context.Background()
	user := f.addUser(t)
	pet := f.addPet(t, domain.StatusDisponible)

	created, err := f.svc.Create(ctx, user.ID, pet.ID)
	require.NoError(t, err)

	t.Run("list returns populated summaries without age or gender", func(t *testing.T) {
		list, err := f.svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)

		assert.Equal(t, created.ID, list[0].ID)
		assert.Equal(t, "Ana García", list[0].Owner.Name)
		assert.Nil(t, list[0].Pet.Age)
		assert.Nil(t, list[0].Pet.Gender)
	})

	t.Run("single read carries age and gender", func(t *testing.T) {
		got, err := f.svc.Get(ctx, created.ID)
		require.NoError(t, err)

		require.NotNil(t, got.Pet.Age)
		assert.Equal(t, 3, *got.Pet.Age)
		require.NotNil(t, got.Pet.Gender)
		assert.Equal(t, domain.GenderHembra, *got.Pet.Gender)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := f.svc.Get(ctx, domain.NewID())
		assert.ErrorIs(t, err, store.ErrAdoptionNotFound)
	})
}
