package usecase

import (
	"context"
	"errors"
	"strings"

	"country_backend/internal/feature/favorites/domain/entity"
)

// FavoriteRepository abstracts persistence for favorite records.
// Following Go convention the interface is defined by the consumer (usecase),
// not the provider (adapters).
type FavoriteRepository interface {
	// Create persists a new favorite. It returns ErrAlreadyFavorite when a
	// record for the same (user, country) pair already exists.
	Create(ctx context.Context, f *entity.Favorite) error

	// ListByUser returns all favorites of one user in insertion order.
	ListByUser(ctx context.Context, userID uint) ([]entity.Favorite, error)

	// DeleteByUserAndCountry hard-deletes the favorite for the pair.
	// It returns ErrFavoriteNotFound when no record matches.
	DeleteByUserAndCountry(ctx context.Context, userID uint, countryID string) error
}

// favoritesUsecase implements the favorites business logic. Every operation
// is scoped to the user ID taken from the verified token, so one user's
// favorites are invisible to another's.
type favoritesUsecase struct {
	favorites FavoriteRepository
}

// NewFavoritesUsecase creates a new instance of favoritesUsecase.
func NewFavoritesUsecase(favorites FavoriteRepository) *favoritesUsecase {
	return &favoritesUsecase{favorites: favorites}
}

// normalizeCode canonicalizes a country code for storage so "usa" and "USA"
// refer to the same favorite.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Add bookmarks a country for the user and returns the stored record.
func (u *favoritesUsecase) Add(ctx context.Context, userID uint, countryCode string) (*entity.Favorite, error) {
	code := normalizeCode(countryCode)
	if code == "" {
		return nil, errors.New("country code is required")
	}

	f := &entity.Favorite{UserID: userID, CountryID: code, IsFavorite: true}
	if err := u.favorites.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// List returns all favorites of the user.
// Order follows insertion but is not part of the contract.
func (u *favoritesUsecase) List(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	return u.favorites.ListByUser(ctx, userID)
}

// Remove deletes the user's favorite for the given country code.
func (u *favoritesUsecase) Remove(ctx context.Context, userID uint, countryCode string) error {
	code := normalizeCode(countryCode)
	if code == "" {
		return ErrFavoriteNotFound
	}
	return u.favorites.DeleteByUserAndCountry(ctx, userID, code)
}
