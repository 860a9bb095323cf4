package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingToken = errors.New("authorization token required")
)

// TokenManager issues and verifies the stateless bearer tokens used by the
// API. Tokens are HS256-signed and carry the user's ID as their only
// application claim. Verification is stateless: there is no server-side
// revocation list.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

// Claims is the token payload: the owning user's ID plus registered claims.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a token manager signing with the given secret.
// A ttl of zero issues tokens with no expiration claim, which remain valid
// until the secret rotates.
func NewTokenManager(secretKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Generate creates a signed token for the given user ID.
func (m *TokenManager) Generate(userID string) (string, error) {
	claims := &Claims{ID: userID}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(m.ttl))
		claims.IssuedAt = jwt.NewNumericDate(time.Now())
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the user ID it carries.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
