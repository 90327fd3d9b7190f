package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"country_backend/internal/api"
)

// TestMain switches Gin into test mode before the tests run.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockUserResolver is a mock implementation of the UserResolver interface.
type mockUserResolver struct {
	ResolveUserFunc func(ctx context.Context, id uint) (*api.UserInfo, error)
}

// ResolveUser is the mock implementation of the ResolveUser method.
func (m *mockUserResolver) ResolveUser(ctx context.Context, id uint) (*api.UserInfo, error) {
	if m.ResolveUserFunc != nil {
		return m.ResolveUserFunc(ctx, id)
	}
	return &api.UserInfo{ID: id, Email: "user@example.com", Username: "user"}, nil
}

// signToken builds a token for middleware tests.
func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// TestAuthRequired_MissingBearerToken verifies that requests without a usable
// bearer token are rejected with 401 and never reach the handler.
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "test-secret")

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			handler := AuthRequired(nil)
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_MissingJWTSecret verifies that an unset JWT_SECRET is
// reported as a server error, not an auth failure.
func TestAuthRequired_MissingJWTSecret(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer some-token")

	AuthRequired(nil)(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

// TestAuthRequired_InvalidTokens verifies that malformed, expired, and badly
// signed tokens are all rejected with 401.
func TestAuthRequired_InvalidTokens(t *testing.T) {
	const secret = "test-secret"
	t.Setenv(EnvKeyJWTSecret, secret)

	expired := signToken(t, secret, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	})
	wrongSecret := signToken(t, "other-secret", jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not.a.jwt"},
		{"expired token", expired},
		{"wrong signing secret", wrongSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", "Bearer "+tt.token)

			AuthRequired(nil)(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

// TestAuthRequired_ValidToken verifies that a valid token passes and the user
// ID plus resolved user record land in the context.
func TestAuthRequired_ValidToken(t *testing.T) {
	const secret = "test-secret"
	t.Setenv(EnvKeyJWTSecret, secret)

	token := signToken(t, secret, jwt.MapClaims{
		"sub": float64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	resolver := &mockUserResolver{
		ResolveUserFunc: func(ctx context.Context, id uint) (*api.UserInfo, error) {
			if id != 7 {
				t.Errorf("expected resolver to receive id 7, got %d", id)
			}
			return &api.UserInfo{ID: id, Email: "seven@example.com", Username: "seven"}, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	AuthRequired(resolver)(c)

	if c.IsAborted() {
		t.Fatalf("expected request to pass, got status %d", w.Code)
	}

	id, ok := UserIDFromContext(c)
	if !ok || id != 7 {
		t.Errorf("expected userID 7 in context, got %d (ok=%v)", id, ok)
	}

	v, ok := c.Get(ContextUser)
	if !ok {
		t.Fatal("expected resolved user in context")
	}
	user, ok := v.(*api.UserInfo)
	if !ok || user.Email != "seven@example.com" {
		t.Errorf("unexpected resolved user: %#v", v)
	}
}

// TestAuthRequired_DeletedUser verifies that a valid token for a user that no
// longer exists is rejected.
func TestAuthRequired_DeletedUser(t *testing.T) {
	const secret = "test-secret"
	t.Setenv(EnvKeyJWTSecret, secret)

	token := signToken(t, secret, jwt.MapClaims{
		"sub": float64(99),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	resolver := &mockUserResolver{
		ResolveUserFunc: func(ctx context.Context, id uint) (*api.UserInfo, error) {
			return nil, errors.New("user not found")
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	AuthRequired(resolver)(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
