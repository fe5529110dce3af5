package services

import (
	"fmt"
	"time"

	"freshreminder/internal/models"

	"github.com/golang-jwt/jwt"
)

// CheckoutClaims is the verified payload of a checkout token: which cart it
// settles and which user is authorized to settle it.
type CheckoutClaims struct {
	CartID string
	UserID string
}

// TokenService issues and verifies the short-lived signed tokens a
// point-of-sale terminal hands to the shopper's device. Tokens are
// self-contained; verification never touches storage and is safe to call
// from any number of requests at once.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenService creates a token service. defaultTTL applies when Issue is
// called with a zero TTL.
func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}
}

// Issue produces a signed checkout token binding a cart to a user, expiring
// after ttl. A zero ttl uses the service default; a negative ttl yields a
// token that is already expired.
func (s *TokenService) Issue(cartID, userID string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	claims := jwt.MapClaims{
		"cart_id": cartID,
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign checkout token: %w", err)
	}
	return token, nil
}

// Verify checks a checkout token's signature and expiry and returns its
// claims. Any failure, tampering, expiry, wrong algorithm, or a malformed
// payload, comes back as models.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*CheckoutClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.ErrInvalidToken
	}

	// MapClaims treats a missing exp as valid; a checkout token without an
	// expiry is malformed.
	if _, hasExp := claims["exp"]; !hasExp {
		return nil, models.ErrInvalidToken
	}

	cartID, _ := claims["cart_id"].(string)
	userID, _ := claims["user_id"].(string)
	if cartID == "" || userID == "" {
		return nil, models.ErrInvalidToken
	}

	return &CheckoutClaims{CartID: cartID, UserID: userID}, nil
}
