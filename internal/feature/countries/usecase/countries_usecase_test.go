package usecase

import (
	"context"
	"testing"

	"country_backend/internal/feature/countries/domain/entity"
)

// mockCountryRepository is a mock implementation of the CountryRepository interface.
type mockCountryRepository struct {
	allFn      func(ctx context.Context) ([]entity.Country, error)
	byNameFn   func(ctx context.Context, name string) ([]entity.Country, error)
	byRegionFn func(ctx context.Context, region string) ([]entity.Country, error)
	byCodeFn   func(ctx context.Context, code string) ([]entity.Country, error)
	byCodesFn  func(ctx context.Context, codes []string) ([]entity.Country, error)
}

func (m *mockCountryRepository) All(ctx context.Context) ([]entity.Country, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return nil, nil
}

func (m *mockCountryRepository) ByName(ctx context.Context, name string) ([]entity.Country, error) {
	if m.byNameFn != nil {
		return m.byNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockCountryRepository) ByRegion(ctx context.Context, region string) ([]entity.Country, error) {
	if m.byRegionFn != nil {
		return m.byRegionFn(ctx, region)
	}
	return nil, nil
}

func (m *mockCountryRepository) ByCode(ctx context.Context, code string) ([]entity.Country, error) {
	if m.byCodeFn != nil {
		return m.byCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *mockCountryRepository) ByCodes(ctx context.Context, codes []string) ([]entity.Country, error) {
	if m.byCodesFn != nil {
		return m.byCodesFn(ctx, codes)
	}
	return nil, nil
}

func TestCountriesUsecase_ByCode(t *testing.T) {
	t.Run("code is lowercased before the catalog call", func(t *testing.T) {
		repo := &mockCountryRepository{
			byCodeFn: func(ctx context.Context, code string) ([]entity.Country, error) {
				if code != "usa" {
					t.Errorf("expected lowercased code usa, got %q", code)
				}
				return []entity.Country{{Code: "USA"}}, nil
			},
		}

		uc := NewCountriesUsecase(repo)
		countries, err := uc.ByCode(context.Background(), "  USA ")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(countries) != 1 {
			t.Fatalf("expected 1 country, got %d", len(countries))
		}
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		uc := NewCountriesUsecase(&mockCountryRepository{})
		if _, err := uc.ByCode(context.Background(), "  "); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestCountriesUsecase_ByCodes(t *testing.T) {
	t.Run("codes are trimmed, lowercased, and empties dropped", func(t *testing.T) {
		repo := &mockCountryRepository{
			byCodesFn: func(ctx context.Context, codes []string) ([]entity.Country, error) {
				if len(codes) != 2 || codes[0] != "usa" || codes[1] != "lkr" {
					t.Errorf("unexpected codes: %v", codes)
				}
				return []entity.Country{{Code: "USA"}, {Code: "LKR"}}, nil
			},
		}

		uc := NewCountriesUsecase(repo)
		countries, err := uc.ByCodes(context.Background(), []string{" USA", "", "lkr "})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(countries) != 2 {
			t.Fatalf("expected 2 countries, got %d", len(countries))
		}
	})

	t.Run("empty batch short-circuits without touching the catalog", func(t *testing.T) {
		repo := &mockCountryRepository{
			byCodesFn: func(ctx context.Context, codes []string) ([]entity.Country, error) {
				t.Error("catalog must not be called for an empty batch")
				return nil, nil
			},
		}

		uc := NewCountriesUsecase(repo)
		countries, err := uc.ByCodes(context.Background(), []string{"", "  "})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(countries) != 0 {
			t.Errorf("expected empty result, got %v", countries)
		}
	})
}

func TestCountriesUsecase_Validation(t *testing.T) {
	uc := NewCountriesUsecase(&mockCountryRepository{})

	if _, err := uc.ByName(context.Background(), "   "); err == nil {
		t.Error("expected validation error for empty name")
	}
	if _, err := uc.ByRegion(context.Background(), ""); err == nil {
		t.Error("expected validation error for empty region")
	}
}
