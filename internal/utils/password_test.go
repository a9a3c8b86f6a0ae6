package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw12345678", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw12345678", hash)

	assert.True(t, VerifyPassword(hash, "pw12345678"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "pw12345678"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same", bcrypt.MinCost)
	assert.NoError(t, err)
	h2, err := HashPassword("same", bcrypt.MinCost)
	assert.NoError(t, err)
	// bcrypt salts every hash, so equal inputs never produce equal hashes
	assert.NotEqual(t, h1, h2)
}
