// Package client is the Go counterpart of the browser application: an HTTP
// client for this backend plus a session-scoped cache reconciling server-side
// favorite IDs with hydrated country records.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"country_backend/internal/api"
	countryentity "country_backend/internal/feature/countries/domain/entity"
	favoriteentity "country_backend/internal/feature/favorites/domain/entity"
)

var (
	// ErrUnauthorized is returned when the backend answers 401: the token is
	// missing, malformed, or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotAuthenticated is returned when an authenticated call is attempted
	// without a token.
	ErrNotAuthenticated = errors.New("no authentication token found")
)

// APIError carries a non-success backend response.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// APIClient talks to the backend's HTTP surface. The bearer token, when set,
// is attached to favorites calls only; country reads stay unauthenticated.
type APIClient struct {
	baseURL string
	client  *http.Client
	token   string
}

// NewAPIClient creates an APIClient for the given base URL.
func NewAPIClient(baseURL string, client *http.Client) *APIClient {
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// SetToken installs the bearer token used for favorites calls.
func (a *APIClient) SetToken(token string) { a.token = token }

// Token returns the current bearer token, empty when logged out.
func (a *APIClient) Token() string { return a.token }

// Signup registers an account. On success the returned token is installed on
// the client, so the caller is authenticated immediately.
func (a *APIClient) Signup(ctx context.Context, username, email, password string) (*api.AuthResponse, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var out api.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/signup", body, false, &out); err != nil {
		return nil, err
	}
	a.token = out.Token
	return &out, nil
}

// Login authenticates and installs the returned token on the client.
func (a *APIClient) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out api.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/login", body, false, &out); err != nil {
		return nil, err
	}
	a.token = out.Token
	return &out, nil
}

// Favorites fetches the caller's favorite records.
func (a *APIClient) Favorites(ctx context.Context) ([]favoriteentity.Favorite, error) {
	var out []favoriteentity.Favorite
	if err := a.do(ctx, http.MethodGet, "/api/favorites/all", nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFavorite bookmarks a country and returns the stored record.
func (a *APIClient) AddFavorite(ctx context.Context, countryCode string) (*favoriteentity.Favorite, error) {
	body := map[string]string{"countryCode": countryCode}
	var out favoriteentity.Favorite
	if err := a.do(ctx, http.MethodPost, "/api/favorites/add", body, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFavorite deletes the caller's favorite for the country code.
func (a *APIClient) RemoveFavorite(ctx context.Context, countryCode string) error {
	body := map[string]string{"countryCode": countryCode}
	var out api.MessageResponse
	return a.do(ctx, http.MethodDelete, "/api/favorites/remove", body, true, &out)
}

// AllCountries fetches the full catalog through the gateway.
func (a *APIClient) AllCountries(ctx context.Context) ([]countryentity.Country, error) {
	return a.countries(ctx, "/api/countries/all")
}

// CountriesByName searches the catalog by display name.
func (a *APIClient) CountriesByName(ctx context.Context, name string) ([]countryentity.Country, error) {
	return a.countries(ctx, "/api/countries/name/"+url.PathEscape(name))
}

// CountriesByRegion lists the countries of a region.
func (a *APIClient) CountriesByRegion(ctx context.Context, region string) ([]countryentity.Country, error) {
	return a.countries(ctx, "/api/countries/region/"+url.PathEscape(region))
}

// CountryByCode resolves one alpha code.
func (a *APIClient) CountryByCode(ctx context.Context, code string) ([]countryentity.Country, error) {
	return a.countries(ctx, "/api/countries/alpha/"+url.PathEscape(code))
}

// CountriesByCodes resolves a batch of alpha codes in one round trip.
func (a *APIClient) CountriesByCodes(ctx context.Context, codes []string) ([]countryentity.Country, error) {
	q := url.Values{}
	q.Set("codes", strings.Join(codes, ","))
	return a.countries(ctx, "/api/countries/alpha?"+q.Encode())
}

func (a *APIClient) countries(ctx context.Context, path string) ([]countryentity.Country, error) {
	var out []countryentity.Country
	if err := a.do(ctx, http.MethodGet, path, nil, false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do performs one request against the backend. Authenticated calls without a
// token fail fast with ErrNotAuthenticated; a 401 response always maps to
// ErrUnauthorized so the session cache can react uniformly.
func (a *APIClient) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	if authed && a.token == "" {
		return ErrNotAuthenticated
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	res, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}
	if res.StatusCode >= 400 {
		var msg api.MessageResponse
		_ = json.NewDecoder(res.Body).Decode(&msg)
		return &APIError{Status: res.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
