// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// It is the domain-level shape; the persisted row shape lives in the
// adapters package so that storage concerns do not leak into business logic.
type User struct {
	// ID is the unique identifier for the user, generated at creation.
	ID string

	// UserName is the display name (3-20 characters, validated at the edge).
	UserName string

	// Email is the user's email address used as the login key.
	// It must be unique across all users.
	Email string

	// PasswordHash is the argon2id encoded hash of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// AuthorizedUser is the projection of a verified token payload.
// It deliberately excludes the password hash and is the only user shape
// attached to a request context.
type AuthorizedUser struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}
