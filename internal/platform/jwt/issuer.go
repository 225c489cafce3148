package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload for both access and refresh tokens.
// The user id travels in the registered "sub" claim.
type Claims struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer defines the interface for signed token creation.
type Issuer interface {
	// Issue creates a signed token for the given user.
	Issue(id, userName, email string) (string, error)
}

// issuer implements the Issuer interface.
type issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates a token issuer with the provided signing secret and
// token lifetime. Access and refresh tokens get independent issuers so a
// key compromise is containable per token kind.
func NewIssuer(secret string, ttl time.Duration) Issuer {
	return &issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates an HS256-signed token carrying the user projection and
// an expiry of now + ttl.
func (i *issuer) Issue(id, userName, email string) (string, error) {
	now := i.now().UTC()

	claims := Claims{
		UserName: userName,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
