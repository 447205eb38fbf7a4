package main

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenClaims(t *testing.T) {
	jwtSecret = []byte("test-secret")

	tokenString, err := GenerateToken(42)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["id"])

	// fixed 30-day lifetime from issuance
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	want := time.Now().Add(tokenLifetime).Unix()
	assert.InDelta(t, want, exp, 5)
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	jwtSecret = []byte("test-secret")
	tokenString, err := GenerateToken(1)
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("some-other-secret"), nil
	})
	assert.Error(t, err)
}

func TestIsUniqueConstraintError(t *testing.T) {
	assert.False(t, isUniqueConstraintError(nil))
	assert.True(t, isUniqueConstraintError(errDummy("duplicate key value violates unique constraint")))
	assert.True(t, isUniqueConstraintError(errDummy("UNIQUE constraint failed: users.email")))
	assert.False(t, isUniqueConstraintError(errDummy("connection refused")))
}

type errDummy string

func (e errDummy) Error() string { return string(e) }
