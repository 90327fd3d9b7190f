package usecase

import (
	"context"
	"errors"
	"strings"

	"country_backend/internal/feature/countries/domain/entity"
)

// CountryRepository abstracts the read-only country catalog.
// Following Go convention the interface is defined by the consumer (usecase),
// not the provider (adapters); the Redis decorator implements it too.
type CountryRepository interface {
	// All returns every country in the catalog.
	All(ctx context.Context) ([]entity.Country, error)

	// ByName returns countries whose name matches the query.
	ByName(ctx context.Context, name string) ([]entity.Country, error)

	// ByRegion returns the countries of a region.
	ByRegion(ctx context.Context, region string) ([]entity.Country, error)

	// ByCode resolves a single alpha code. The upstream returns a list even
	// for a single code, so implementations do as well.
	ByCode(ctx context.Context, code string) ([]entity.Country, error)

	// ByCodes resolves a batch of alpha codes in one round trip.
	ByCodes(ctx context.Context, codes []string) ([]entity.Country, error)
}

// countriesUsecase exposes catalog reads with input normalization.
type countriesUsecase struct {
	catalog CountryRepository
}

// NewCountriesUsecase creates a new instance of countriesUsecase.
func NewCountriesUsecase(catalog CountryRepository) *countriesUsecase {
	return &countriesUsecase{catalog: catalog}
}

// All returns every country in the catalog.
func (u *countriesUsecase) All(ctx context.Context) ([]entity.Country, error) {
	return u.catalog.All(ctx)
}

// ByName looks countries up by display name.
func (u *countriesUsecase) ByName(ctx context.Context, name string) ([]entity.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	return u.catalog.ByName(ctx, name)
}

// ByRegion lists the countries of a region.
func (u *countriesUsecase) ByRegion(ctx context.Context, region string) ([]entity.Country, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return nil, errors.New("region is required")
	}
	return u.catalog.ByRegion(ctx, region)
}

// ByCode resolves one alpha code. Codes are normalized to lowercase before
// the request, matching the upstream contract.
func (u *countriesUsecase) ByCode(ctx context.Context, code string) ([]entity.Country, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, errors.New("code is required")
	}
	return u.catalog.ByCode(ctx, code)
}

// ByCodes resolves a batch of alpha codes. Empty entries are dropped and the
// remainder lowercased; an empty batch short-circuits to an empty result
// without touching the upstream.
func (u *countriesUsecase) ByCodes(ctx context.Context, codes []string) ([]entity.Country, error) {
	normalized := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			normalized = append(normalized, c)
		}
	}
	if len(normalized) == 0 {
		return []entity.Country{}, nil
	}
	return u.catalog.ByCodes(ctx, normalized)
}
