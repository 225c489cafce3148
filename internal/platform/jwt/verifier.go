package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the uniform failure for any rejected token.
// Bad signature, expiry and malformed input all map to it so that an
// unauthenticated caller cannot distinguish the reason; the underlying
// cause is still available via errors.Unwrap for internal logging.
var ErrInvalidToken = errors.New("invalid token")

// Verifier defines the interface for signed token verification.
type Verifier interface {
	// Verify checks signature and expiry and returns the token claims.
	Verify(tokenStr string) (*Claims, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a token verifier for the provided signing secret.
func NewVerifier(secret string) Verifier {
	return &verifier{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Verify parses and validates the token. Any failure yields ErrInvalidToken.
func (v *verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; an attacker must not be able to switch
		// the algorithm via the token header.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
