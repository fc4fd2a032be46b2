package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLifetime is how long an issued session token stays valid.
const DefaultLifetime = 72 * time.Hour // 3 days

// ErrInvalidToken is returned when a token fails verification for any
// reason: bad signature, malformed payload, or expiry.
var ErrInvalidToken = errors.New("invalid token")

// Codec defines the interface for issuing and verifying session tokens.
type Codec interface {
	// IssueToken creates a signed session token for the given user.
	IssueToken(userID uint) (string, error)
	// VerifyToken checks the token signature and expiry and returns the
	// embedded user ID.
	VerifyToken(token string) (uint, error)
}

// codec implements the Codec interface with HS256-signed JWTs.
type codec struct {
	secret   []byte
	lifetime time.Duration
}

// NewCodec creates a new token codec with the provided secret and lifetime.
// A non-positive lifetime falls back to DefaultLifetime.
func NewCodec(secret string, lifetime time.Duration) Codec {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &codec{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// IssueToken creates a signed JWT with standard claims.
func (c *codec) IssueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(c.lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and verifies a session token.
// Signature, signing method, and expiry are all checked; there is no
// grace period past the embedded expiry.
func (c *codec) VerifyToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
