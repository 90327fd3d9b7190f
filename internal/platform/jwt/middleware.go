// Package jwtmw provides JWT issuance and the Gin middleware that gates
// authenticated routes.
package jwtmw

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"country_backend/internal/api"
)

// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

const (
	// ContextUserID is the Gin context key carrying the authenticated user's ID.
	ContextUserID = "userID"

	// ContextUser is the Gin context key carrying the resolved user record.
	ContextUser = "authUser"
)

// UserResolver loads the minimal public view of a user by ID.
// The middleware defines the interface it consumes; the auth adapters provide it.
type UserResolver interface {
	ResolveUser(ctx context.Context, id uint) (*api.UserInfo, error)
}

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated users. On success it attaches the user ID
// and, when a resolver is supplied, the minimal user record to the context.
// A token signed for one user can never act on another user's data: every
// downstream handler reads the ID from the verified claims, not the request.
func AuthRequired(users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "Authorization token required"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.MessageResponse{Message: "server misconfigured"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is accepted; anything else is a forgery attempt
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			// Expired, malformed, or badly signed tokens all get the same answer
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "Request is not authorized"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "Request is not authorized"})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "Request is not authorized"})
			return
		}
		userID := uint(sub)
		c.Set(ContextUserID, userID)

		if users != nil {
			user, err := users.ResolveUser(c.Request.Context(), userID)
			if err != nil {
				// Token refers to a user that no longer exists
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.MessageResponse{Message: "Request is not authorized"})
				return
			}
			c.Set(ContextUser, user)
		}

		c.Next()
	}
}

// UserIDFromContext extracts the authenticated user's ID set by AuthRequired.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
