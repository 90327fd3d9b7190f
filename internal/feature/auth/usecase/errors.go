// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when signup hits an email or username
	// that is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. Both cases share this error so responses
	// cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
