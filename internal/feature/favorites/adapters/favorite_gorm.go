// Package adapters provides the repository implementations for the favorites feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"country_backend/internal/feature/favorites/domain/entity"
	"country_backend/internal/feature/favorites/usecase"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// favoriteGorm is the GORM implementation of the FavoriteRepository interface.
type favoriteGorm struct {
	db *gorm.DB
}

// Compile-time check that favoriteGorm implements FavoriteRepository.
var _ usecase.FavoriteRepository = (*favoriteGorm)(nil)

// NewFavoriteGorm creates a new favoriteGorm backed by the given gorm.DB connection.
func NewFavoriteGorm(db *gorm.DB) *favoriteGorm {
	return &favoriteGorm{db: db}
}

// Create inserts a favorite. Duplicate (user_id, country_id) pairs hit the
// composite unique index and come back as usecase.ErrAlreadyFavorite; there
// is no separate existence check to race against.
func (r *favoriteGorm) Create(ctx context.Context, f *entity.Favorite) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

// ListByUser returns all favorites of one user ordered by insertion.
func (r *favoriteGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteByUserAndCountry hard-deletes the favorite for the (user, country)
// pair. It returns usecase.ErrFavoriteNotFound when no row matched.
func (r *favoriteGorm) DeleteByUserAndCountry(ctx context.Context, userID uint, countryID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND country_id = ?", userID, countryID).
		Delete(&entity.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrFavoriteNotFound
	}
	return nil
}

// isDuplicateKey recognizes unique constraint violations across drivers.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
