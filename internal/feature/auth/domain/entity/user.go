// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It carries the credentials needed for authentication and nothing else;
// profile management is out of scope for this service.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the display name chosen at signup.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
