// Package handler provides the HTTP handlers for the countries feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"country_backend/internal/api"
	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/usecase"
)

// CountriesUsecase defines the catalog reads the handler consumes.
type CountriesUsecase interface {
	All(ctx context.Context) ([]entity.Country, error)
	ByName(ctx context.Context, name string) ([]entity.Country, error)
	ByRegion(ctx context.Context, region string) ([]entity.Country, error)
	ByCode(ctx context.Context, code string) ([]entity.Country, error)
	ByCodes(ctx context.Context, codes []string) ([]entity.Country, error)
}

// CountriesHandler serves the unauthenticated pass-through to the country
// catalog. It owns no data; every response is upstream data reduced to the
// fields the application displays.
type CountriesHandler struct {
	countries CountriesUsecase
}

// NewCountriesHandler creates a new instance of CountriesHandler.
func NewCountriesHandler(countries CountriesUsecase) *CountriesHandler {
	return &CountriesHandler{countries: countries}
}

// All handles GET /api/countries/all.
func (h *CountriesHandler) All(c *gin.Context) {
	h.respond(c, func(ctx context.Context) ([]entity.Country, error) {
		return h.countries.All(ctx)
	})
}

// ByName handles GET /api/countries/name/:name.
func (h *CountriesHandler) ByName(c *gin.Context) {
	name := c.Param("name")
	h.respond(c, func(ctx context.Context) ([]entity.Country, error) {
		return h.countries.ByName(ctx, name)
	})
}

// ByRegion handles GET /api/countries/region/:region.
func (h *CountriesHandler) ByRegion(c *gin.Context) {
	region := c.Param("region")
	h.respond(c, func(ctx context.Context) ([]entity.Country, error) {
		return h.countries.ByRegion(ctx, region)
	})
}

// ByCode handles GET /api/countries/alpha/:code.
func (h *CountriesHandler) ByCode(c *gin.Context) {
	code := c.Param("code")
	h.respond(c, func(ctx context.Context) ([]entity.Country, error) {
		return h.countries.ByCode(ctx, code)
	})
}

// ByCodes handles GET /api/countries/alpha?codes=AAA,BBB, the batch lookup
// used to hydrate a favorite list in one round trip.
func (h *CountriesHandler) ByCodes(c *gin.Context) {
	raw := c.Query("codes")
	if strings.TrimSpace(raw) == "" {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "codes query parameter required"})
		return
	}
	codes := strings.Split(raw, ",")
	h.respond(c, func(ctx context.Context) ([]entity.Country, error) {
		return h.countries.ByCodes(ctx, codes)
	})
}

// respond runs one catalog read and maps its failure modes:
// - upstream non-success: 502 carrying the upstream status and detail
// - anything else (transport, decode): 502 with a generic message
func (h *CountriesHandler) respond(c *gin.Context, load func(ctx context.Context) ([]entity.Country, error)) {
	countries, err := load(c.Request.Context())
	if err != nil {
		var upstream *usecase.UpstreamError
		if errors.As(err, &upstream) {
			slog.Warn("country catalog rejected request", "status", upstream.Status, "detail", upstream.Detail)
			c.JSON(http.StatusBadGateway, api.MessageResponse{Message: upstream.Error()})
			return
		}
		slog.Error("country catalog unreachable", "error", err)
		c.JSON(http.StatusBadGateway, api.MessageResponse{Message: "Country catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, countries)
}
