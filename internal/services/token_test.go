package services

import (
	"testing"
	"time"

	"freshreminder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 5*time.Minute)

	token, err := svc.Issue("cart-1", "user-1", 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "cart-1", claims.CartID)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", 5*time.Minute)

	// Issue a token that expired a minute ago
	token, err := svc.Issue("cart-1", "user-1", -time.Minute)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService("test-secret", 5*time.Minute)

	token, err := svc.Issue("cart-1", "user-1", 0)
	require.NoError(t, err)

	// Flip one byte in every position; verification must reject each variant
	for i := 0; i < len(token); i += 7 {
		tampered := []byte(token)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}
		if string(tampered) == token {
			continue
		}

		claims, err := svc.Verify(string(tampered))
		assert.Nil(t, claims, "tampered byte at %d accepted", i)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 5*time.Minute)
	verifier := NewTokenService("secret-b", 5*time.Minute)

	token, err := issuer.Issue("cart-1", "user-1", 0)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", 5*time.Minute)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9..x"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, models.ErrInvalidToken, "token %q", token)
	}
}
