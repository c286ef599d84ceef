package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	t.Run("round trips a generated id", func(t *testing.T) {
		t.Parallel()

		id := NewID()
		parsed, err := ParseID(id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "abc123"},
		{"not hex", "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{"too long", "64b64b64b64b64b64b64b64b64"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := ParseID(tc.input)
			assert.Equal(t, NilID, parsed)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}
