package client

import (
	"context"
	"errors"

	"country_backend/internal/api"
	countryentity "country_backend/internal/feature/countries/domain/entity"
)

// PageSize is the number of countries shown per pagination step.
const PageSize = 20

// ErrSessionExpired is returned when the backend rejects the session token.
// The session has already been reset when this error is seen; favorite state
// reverts to the unauthenticated view and the caller should re-authenticate.
var ErrSessionExpired = errors.New("session expired, please log in again")

// Session is the explicit session-scoped cache behind the country browser.
// It reconciles the server-side favorite-ID set with hydrated country records
// and keeps the pagination window over the current country list.
//
// A Session belongs to one user interaction loop and is not safe for
// concurrent use.
type Session struct {
	api       *APIClient
	user      *api.UserInfo
	favorites map[string]struct{}
	countries []countryentity.Country
	visible   int
}

// NewSession creates an unauthenticated session over the given API client.
func NewSession(apiClient *APIClient) *Session {
	return &Session{
		api:       apiClient,
		favorites: map[string]struct{}{},
	}
}

// Authenticated reports whether the session holds a user and token.
func (s *Session) Authenticated() bool {
	return s.user != nil && s.api.Token() != ""
}

// User returns the authenticated user, nil when logged out.
func (s *Session) User() *api.UserInfo { return s.user }

// Signup registers an account and authenticates the session with the
// returned token.
func (s *Session) Signup(ctx context.Context, username, email, password string) error {
	res, err := s.api.Signup(ctx, username, email, password)
	if err != nil {
		return err
	}
	s.user = &res.User
	s.favorites = map[string]struct{}{}
	return nil
}

// Login authenticates the session and loads the favorite-ID set.
func (s *Session) Login(ctx context.Context, email, password string) error {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.user = &res.User
	return s.RefreshFavorites(ctx)
}

// Logout drops the token, user, and cached favorite state.
// Country data survives; browsing needs no session.
func (s *Session) Logout() {
	s.api.SetToken("")
	s.user = nil
	s.favorites = map[string]struct{}{}
}

// RefreshFavorites reloads the favorite-ID set from the backend.
func (s *Session) RefreshFavorites(ctx context.Context) error {
	records, err := s.api.Favorites(ctx)
	if err != nil {
		return s.authErr(err)
	}
	set := make(map[string]struct{}, len(records))
	for _, r := range records {
		set[r.CountryID] = struct{}{}
	}
	s.favorites = set
	return nil
}

// Browse loads the full catalog and resets the pagination window.
func (s *Session) Browse(ctx context.Context) error {
	countries, err := s.api.AllCountries(ctx)
	if err != nil {
		return err
	}
	s.setCountries(countries)
	return nil
}

// Search replaces the current list with countries matching the name.
// An empty upstream match leaves an empty list; the caller decides how to
// present it.
func (s *Session) Search(ctx context.Context, name string) error {
	countries, err := s.api.CountriesByName(ctx, name)
	if err != nil {
		s.setCountries(nil)
		return err
	}
	s.setCountries(countries)
	return nil
}

// FilterRegion replaces the current list with the countries of a region.
func (s *Session) FilterRegion(ctx context.Context, region string) error {
	countries, err := s.api.CountriesByRegion(ctx, region)
	if err != nil {
		s.setCountries(nil)
		return err
	}
	s.setCountries(countries)
	return nil
}

// Countries returns the full current list.
func (s *Session) Countries() []countryentity.Country { return s.countries }

// Visible returns the paginated slice of the current list.
func (s *Session) Visible() []countryentity.Country {
	if s.visible > len(s.countries) {
		return s.countries
	}
	return s.countries[:s.visible]
}

// LoadMore widens the pagination window by one page.
func (s *Session) LoadMore() {
	s.visible += PageSize
	if s.visible > len(s.countries) {
		s.visible = len(s.countries)
	}
}

// IsFavorite reports whether the country code is in the cached favorite set.
func (s *Session) IsFavorite(code string) bool {
	_, ok := s.favorites[code]
	return ok
}

// Toggle flips the favorite state of a country: a favorited code is removed
// from the backend and dropped from the set, an unfavorited one is added and
// inserted. The set is only updated after the backend call succeeds.
func (s *Session) Toggle(ctx context.Context, code string) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}

	if s.IsFavorite(code) {
		if err := s.api.RemoveFavorite(ctx, code); err != nil {
			return s.authErr(err)
		}
		delete(s.favorites, code)
		return nil
	}

	fav, err := s.api.AddFavorite(ctx, code)
	if err != nil {
		return s.authErr(err)
	}
	s.favorites[fav.CountryID] = struct{}{}
	return nil
}

// FavoriteCountries hydrates the favorite-ID set into country records with a
// single batch lookup.
func (s *Session) FavoriteCountries(ctx context.Context) ([]countryentity.Country, error) {
	if err := s.RefreshFavorites(ctx); err != nil {
		return nil, err
	}
	if len(s.favorites) == 0 {
		return []countryentity.Country{}, nil
	}
	codes := make([]string, 0, len(s.favorites))
	for code := range s.favorites {
		codes = append(codes, code)
	}
	return s.api.CountriesByCodes(ctx, codes)
}

// setCountries installs a new list and resets the window to the first page.
func (s *Session) setCountries(countries []countryentity.Country) {
	s.countries = countries
	s.visible = PageSize
	if s.visible > len(countries) {
		s.visible = len(countries)
	}
}

// authErr translates a 401 into a session reset. Any other error passes
// through untouched.
func (s *Session) authErr(err error) error {
	if errors.Is(err, ErrUnauthorized) {
		s.Logout()
		return ErrSessionExpired
	}
	return err
}
