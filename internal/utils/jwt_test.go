package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessTokenClaims(t *testing.T) {
	tok, err := NewAccessToken("secret", 42, "t1@example.com", "teacher", 60)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), tok.Exp, 5*time.Second)

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "t1@example.com", claims["name"])
	assert.Equal(t, "teacher", claims["role"])
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("secret", 1, "s1", "student", 60)
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func TestNewAccessTokenExpired(t *testing.T) {
	tok, err := NewAccessToken("secret", 1, "s1", "student", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
