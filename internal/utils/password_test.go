package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifySecret(t *testing.T) {
	hash, err := HashSecret("1234")
	require.NoError(t, err)
	require.NotEqual(t, "1234", hash)

	assert.True(t, VerifySecret("1234", hash))
	assert.False(t, VerifySecret("0000", hash))
}

func TestVerifySecretMalformedHash(t *testing.T) {
	// A garbage hash is a mismatch, not a panic.
	assert.False(t, VerifySecret("1234", "not-a-bcrypt-hash"))
}
