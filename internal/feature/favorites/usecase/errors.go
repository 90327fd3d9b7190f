// Package usecase implements the business logic for the favorites feature.
package usecase

import "errors"

var (
	// ErrAlreadyFavorite is returned when the (user, country) pair already has
	// a favorite record. It is raised from the storage-level unique constraint,
	// so concurrent adds cannot slip past it.
	ErrAlreadyFavorite = errors.New("already in favorites")

	// ErrFavoriteNotFound is returned when a removal targets a pair that has
	// no favorite record.
	ErrFavoriteNotFound = errors.New("favorite not found")
)
