package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-banget-123")
	require.NoError(t, err)
	require.NotEqual(t, "rahasia-banget-123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia-banget-123"))
	assert.Error(t, CheckPasswordHash(hash, "password-salah"))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("rahasia-banget-123")
	require.NoError(t, err)
	h2, err := HashPassword("rahasia-banget-123")
	require.NoError(t, err)

	// bcrypt pakai salt acak, hash yang sama dua kali harus beda
	assert.NotEqual(t, h1, h2)
}
