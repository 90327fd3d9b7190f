// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"country_backend/internal/api"
	"country_backend/internal/feature/auth/domain/entity"
	"country_backend/internal/feature/auth/transport/http/dto"
	"country_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations the handler consumes.
// Following Go convention the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns a token bound to the new ID.
	Signup(ctx context.Context, username, email, password string) (string, *entity.User, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthHandler handles the HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /api/auth/signup.
// - Malformed or invalid payloads get 400
// - A duplicate email or username gets 400 without detail
// - On success the new user is logged in immediately: 200 with token and user
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request"})
		return
	}

	token, user, err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			slog.Warn("signup rejected, duplicate user", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "User already exists"})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Server error"})
		return
	}

	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{
		Token: token,
		User:  api.UserInfo{ID: user.ID, Email: user.Email, Username: user.Username},
	})
}

// Login handles POST /api/auth/login.
// - Malformed payloads get 400
// - Unknown email and wrong password both get the same 400 "Invalid credentials"
// - On success: 200 with token and user
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "Invalid credentials"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Server error"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.AuthResponse{
		Token: token,
		User:  api.UserInfo{ID: user.ID, Email: user.Email, Username: user.Username},
	})
}
