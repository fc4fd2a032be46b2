// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the email or username is already taken.
	// It is deliberately undifferentiated so callers cannot probe which field collided.
	ErrUserAlreadyExists = errors.New("email or username already exists")

	// ErrInvalidCredentials is returned on sign-in failure.
	// A missing user and a wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated is returned when a bearer token is missing, malformed,
	// expired, or refers to a user that no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")
)
