package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordIsSaltedButVerifiable(t *testing.T) {
	first, err := HashPassword("rahasia123")
	require.NoError(t, err)
	second, err := HashPassword("rahasia123")
	require.NoError(t, err)

	// Salted: same input, different hashes
	assert.NotEqual(t, first, second)

	assert.True(t, CheckPassword("rahasia123", first))
	assert.True(t, CheckPassword("rahasia123", second))
	assert.False(t, CheckPassword("wrong", first))
}

func TestCheckPasswordRejectsGarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("rahasia123", "not-a-bcrypt-hash"))
}
