package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdoption(t *testing.T) {
	t.Parallel()

	owner := NewID()
	pet := NewID()
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("ART", -3*3600))

	t.Run("creates adoption with UTC date", func(t *testing.T) {
		t.Parallel()

		adoption, err := NewAdoption(owner, pet, date)
		require.NoError(t, err)

		assert.Equal(t, owner, adoption.Owner)
		assert.Equal(t, pet, adoption.Pet)
		assert.Equal(t, time.UTC, adoption.AdoptionDate.Location())
		assert.True(t, adoption.AdoptionDate.Equal(date))
	})

	t.Run("rejects zero owner reference", func(t *testing.T) {
		t.Parallel()

		adoption, err := NewAdoption(NilID, pet, date)
		assert.Nil(t, adoption)
		assert.ErrorIs(t, err, ErrEmptyOwnerRef)
	})

	t.Run("rejects zero pet reference", func(t *testing.T) {
		t.Parallel()

		adoption, err := NewAdoption(owner, NilID, date)
		assert.Nil(t, adoption)
		assert.ErrorIs(t, err, ErrEmptyPetRef)
	})
}
