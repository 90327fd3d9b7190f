package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"country_backend/internal/api"
	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/usecase"
)

// TestMain switches Gin into test mode before the tests run.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockCountriesUsecase is a mock implementation of the CountriesUsecase interface.
type mockCountriesUsecase struct {
	AllFunc      func(ctx context.Context) ([]entity.Country, error)
	ByNameFunc   func(ctx context.Context, name string) ([]entity.Country, error)
	ByRegionFunc func(ctx context.Context, region string) ([]entity.Country, error)
	ByCodeFunc   func(ctx context.Context, code string) ([]entity.Country, error)
	ByCodesFunc  func(ctx context.Context, codes []string) ([]entity.Country, error)
}

func (m *mockCountriesUsecase) All(ctx context.Context) ([]entity.Country, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCountriesUsecase) ByName(ctx context.Context, name string) ([]entity.Country, error) {
	if m.ByNameFunc != nil {
		return m.ByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCountriesUsecase) ByRegion(ctx context.Context, region string) ([]entity.Country, error) {
	if m.ByRegionFunc != nil {
		return m.ByRegionFunc(ctx, region)
	}
	return nil, nil
}

func (m *mockCountriesUsecase) ByCode(ctx context.Context, code string) ([]entity.Country, error) {
	if m.ByCodeFunc != nil {
		return m.ByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockCountriesUsecase) ByCodes(ctx context.Context, codes []string) ([]entity.Country, error) {
	if m.ByCodesFunc != nil {
		return m.ByCodesFunc(ctx, codes)
	}
	return nil, nil
}

func newRouter(h *CountriesHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/countries/all", h.All)
	r.GET("/api/countries/name/:name", h.ByName)
	r.GET("/api/countries/region/:region", h.ByRegion)
	r.GET("/api/countries/alpha", h.ByCodes)
	r.GET("/api/countries/alpha/:code", h.ByCode)
	return r
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCountriesHandler_All(t *testing.T) {
	h := NewCountriesHandler(&mockCountriesUsecase{
		AllFunc: func(ctx context.Context) ([]entity.Country, error) {
			return []entity.Country{{Code: "LKA", Name: "Sri Lanka", Region: "Asia"}}, nil
		},
	})

	w := get(t, newRouter(h), "/api/countries/all")

	assert.Equal(t, http.StatusOK, w.Code)
	var res []entity.Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "LKA", res[0].Code)
}

func TestCountriesHandler_ByName_PassesParam(t *testing.T) {
	h := NewCountriesHandler(&mockCountriesUsecase{
		ByNameFunc: func(ctx context.Context, name string) ([]entity.Country, error) {
			assert.Equal(t, "france", name)
			return []entity.Country{{Code: "FRA"}}, nil
		},
	})

	w := get(t, newRouter(h), "/api/countries/name/france")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCountriesHandler_ByCodes(t *testing.T) {
	t.Run("codes query is split and forwarded", func(t *testing.T) {
		h := NewCountriesHandler(&mockCountriesUsecase{
			ByCodesFunc: func(ctx context.Context, codes []string) ([]entity.Country, error) {
				assert.Equal(t, []string{"USA", "LKA"}, codes)
				return []entity.Country{{Code: "USA"}, {Code: "LKA"}}, nil
			},
		})

		w := get(t, newRouter(h), "/api/countries/alpha?codes=USA,LKA")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing codes query gets 400", func(t *testing.T) {
		h := NewCountriesHandler(&mockCountriesUsecase{})

		w := get(t, newRouter(h), "/api/countries/alpha")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCountriesHandler_UpstreamFailure(t *testing.T) {
	t.Run("upstream rejection becomes 502 with status and detail", func(t *testing.T) {
		h := NewCountriesHandler(&mockCountriesUsecase{
			ByNameFunc: func(ctx context.Context, name string) ([]entity.Country, error) {
				return nil, &usecase.UpstreamError{Status: 404, Detail: "Not Found"}
			},
		})

		w := get(t, newRouter(h), "/api/countries/name/atlantis")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var res api.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Contains(t, res.Message, "404")
		assert.Contains(t, res.Message, "Not Found")
	})

	t.Run("transport failure becomes a generic 502", func(t *testing.T) {
		h := NewCountriesHandler(&mockCountriesUsecase{
			AllFunc: func(ctx context.Context) ([]entity.Country, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		})

		w := get(t, newRouter(h), "/api/countries/all")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		var res api.MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Country catalog unavailable", res.Message)
		// Raw transport detail must not leak
		assert.NotContains(t, res.Message, "dial tcp")
	})
}
