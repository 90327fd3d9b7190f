// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"country_backend/internal/api"
	"country_backend/internal/feature/auth/domain/entity"
	"country_backend/internal/feature/auth/usecase"
	jwtmw "country_backend/internal/platform/jwt"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time checks that userGorm implements the consumer interfaces.
var (
	_ usecase.UserRepository = (*userGorm)(nil)
	_ jwtmw.UserResolver     = (*userGorm)(nil)
)

// NewUserGorm creates a new userGorm backed by the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts a user. A unique constraint violation on email or username
// is translated to usecase.ErrUserAlreadyExists.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail fetches a user by email address.
// It returns usecase.ErrUserNotFound when no such user exists.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID fetches a user by ID.
// It returns usecase.ErrUserNotFound when no such user exists.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ResolveUser implements jwtmw.UserResolver: the minimal public view the
// middleware attaches to authenticated requests.
func (r *userGorm) ResolveUser(ctx context.Context, id uint) (*api.UserInfo, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &api.UserInfo{ID: u.ID, Email: u.Email, Username: u.Username}, nil
}

// isDuplicateKey recognizes unique constraint violations across drivers.
// GORM's TranslateError covers SQLite and most PostgreSQL cases; the pgconn
// check catches codes GORM does not translate.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
