package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"country_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts persistence for user entities.
// Following Go convention the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists when the
	// email or username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail fetches the user with the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID fetches the user with the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator defines the token issuance interface the usecase consumes.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email, username string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks that a password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password and returns a signed
// token so the caller is authenticated immediately. The signup token is bound
// to the user ID only.
func (u *authUsecase) Signup(ctx context.Context, username, email, password string) (string, *entity.User, error) {
	if err := validatePassword(password); err != nil {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, "", "")
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// Login authenticates a user and returns a signed token on success.
// The login token carries the user's ID, email, and username.
// To mitigate timing attacks the bcrypt comparison runs even when no user
// matches the email.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps the compare cost constant when the user is unknown
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// Unknown email and wrong password are indistinguishable to the caller
	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email, user.Username)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}
