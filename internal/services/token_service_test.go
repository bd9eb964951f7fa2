package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokenService := NewTokenService(testSecret)

	token, err := tokenService.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UID)
}

func TestTokenService_TamperedToken(t *testing.T) {
	tokenService := NewTokenService(testSecret)

	token, err := tokenService.GenerateToken(7)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret)
	verifier := NewTokenService("another-secret-entirely-here")

	token, err := issuer.GenerateToken(7)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	tokenService := NewTokenService(testSecret)

	claims := TokenClaims{
		UID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_RejectsNonHMAC(t *testing.T) {
	tokenService := NewTokenService(testSecret)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{UID: 7}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
