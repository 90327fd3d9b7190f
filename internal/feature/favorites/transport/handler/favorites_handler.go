// Package handler provides the HTTP handlers for the favorites feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"country_backend/internal/api"
	"country_backend/internal/feature/favorites/domain/entity"
	"country_backend/internal/feature/favorites/transport/http/dto"
	"country_backend/internal/feature/favorites/usecase"
	jwtmw "country_backend/internal/platform/jwt"
)

// FavoritesUsecase defines the favorite operations the handler consumes.
type FavoritesUsecase interface {
	// Add bookmarks a country for the user and returns the stored record.
	Add(ctx context.Context, userID uint, countryCode string) (*entity.Favorite, error)
	// List returns all favorites of the user.
	List(ctx context.Context, userID uint) ([]entity.Favorite, error)
	// Remove deletes the user's favorite for the given country code.
	Remove(ctx context.Context, userID uint, countryCode string) error
}

// FavoritesHandler handles the HTTP requests for favorite operations.
// All routes sit behind the JWT middleware; the user ID always comes from the
// verified token, never from the request body.
type FavoritesHandler struct {
	favorites FavoritesUsecase
}

// NewFavoritesHandler creates a new instance of FavoritesHandler.
func NewFavoritesHandler(favorites FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// Add handles POST /api/favorites/add.
// - 400 when the payload is malformed or the country is already bookmarked
// - 200 with the stored favorite record on success
func (h *FavoritesHandler) Add(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "Request is not authorized"})
		return
	}

	var req dto.FavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("favorite add validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request"})
		return
	}

	favorite, err := h.favorites.Add(c.Request.Context(), userID, req.CountryCode)
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadyFavorite) {
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "Already in favorites"})
			return
		}
		slog.Error("favorite add failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Server error"})
		return
	}

	slog.Info("favorite added", "user_id", userID, "country_id", favorite.CountryID)
	c.JSON(http.StatusOK, favorite)
}

// All handles GET /api/favorites/all and returns every favorite of the caller.
func (h *FavoritesHandler) All(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "Request is not authorized"})
		return
	}

	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("favorite list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// Remove handles DELETE /api/favorites/remove.
// - 404 when no favorite exists for the pair
// - 200 with a confirmation message on success
func (h *FavoritesHandler) Remove(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "Request is not authorized"})
		return
	}

	var req dto.FavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("favorite remove validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request"})
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), userID, req.CountryCode); err != nil {
		if errors.Is(err, usecase.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "Favorite not found"})
			return
		}
		slog.Error("favorite remove failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Server error"})
		return
	}

	slog.Info("favorite removed", "user_id", userID, "country_code", req.CountryCode)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Removed from favorites"})
}
