// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when attempting to create a user with
	// an email that already exists. Repositories must surface the storage
	// uniqueness violation as this error, never as a generic failure.
	ErrUserAlreadyExists = errors.New("user already exists")
)
