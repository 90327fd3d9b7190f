// Package entity defines the domain entities for the favorites feature.
package entity

import "time"

// Favorite is a persisted association between a user and a country code.
// The composite unique index on (user_id, country_id) makes duplicate
// bookmarks impossible at the storage level; concurrent adds for the same
// pair resolve to one row and one constraint violation.
type Favorite struct {
	// ID is the unique identifier for the favorite record.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID references the owning user.
	UserID uint `gorm:"uniqueIndex:idx_user_country;not null" json:"userId"`

	// CountryID is the ISO alpha-3 code of the bookmarked country.
	// It is opaque to this service; only the upstream catalog can resolve it.
	CountryID string `gorm:"uniqueIndex:idx_user_country;size:8;not null" json:"countryId"`

	// IsFavorite is carried for compatibility with the stored document shape.
	// Records are hard-deleted on removal, so it is always true in practice.
	IsFavorite bool `gorm:"default:true" json:"isFavorite"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
