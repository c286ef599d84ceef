package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hashed, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "pw123456", hashed)

	assert.NoError(t, verifier.Compare(hashed, "pw123456"))
	assert.Error(t, verifier.Compare(hashed, "wrong-password"))
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "pw123456"))
}

func TestBcryptHashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	first, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
