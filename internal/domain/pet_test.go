package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPet() *Pet {
	now := time.Now().UTC()
	return &Pet{
		Name:      "Luna",
		Species:   SpeciesPerro,
		Breed:     "Mestizo",
		Age:       3,
		Gender:    GenderHembra,
		Size:      SizeMediano,
		Status:    StatusDisponible,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPetValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Pet)
		wantErr error
	}{
		{"valid", func(p *Pet) {}, nil},
		{"empty name", func(p *Pet) { p.Name = "" }, ErrEmptyPetName},
		{"invalid species", func(p *Pet) { p.Species = "Dragón" }, ErrInvalidSpecies},
		{"empty species", func(p *Pet) { p.Species = "" }, ErrInvalidSpecies},
		{"negative age", func(p *Pet) { p.Age = -1 }, ErrNegativeAge},
		{"invalid gender", func(p *Pet) { p.Gender = "X" }, ErrInvalidGender},
		{"invalid size", func(p *Pet) { p.Size = "Enorme" }, ErrInvalidSize},
		{"invalid status", func(p *Pet) { p.Status = "Perdido" }, ErrInvalidStatus},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pet := validPet()
			tc.mutate(pet)

			err := pet.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPetAdoptable(t *testing.T) {
	t.Parallel()

	pet := validPet()

	pet.Status = StatusDisponible
	assert.True(t, pet.Adoptable())

	// Reserved pets can still complete an adoption.
	pet.Status = StatusReservado
	assert.True(t, pet.Adoptable())

	pet.Status = StatusAdoptado
	assert.False(t, pet.Adoptable())
}

func TestPetEnums(t *testing.T) {
	t.Parallel()

	assert.True(t, SpeciesGato.Valid())
	assert.False(t, Species("Pez").Valid())

	assert.True(t, GenderDesconocido.Valid())
	assert.False(t, Gender("").Valid())

	assert.True(t, SizePequeno.Valid())
	assert.False(t, Size("XL").Valid())

	assert.True(t, StatusReservado.Valid())
	assert.False(t, PetStatus("").Valid())
}
