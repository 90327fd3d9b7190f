package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"country_backend/internal/feature/countries/adapters/restcountries/dto"
	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/usecase"
)

// maxErrorDetail caps how much of an upstream error body is carried back.
const maxErrorDetail = 512

// Client is the CountryRepository implementation backed by restcountries.com.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements CountryRepository.
var _ usecase.CountryRepository = (*Client)(nil)

// NewClient creates a new restcountries client with the given configuration
// and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// All fetches the full catalog from /all.
func (c *Client) All(ctx context.Context) ([]entity.Country, error) {
	return c.get(ctx, "/all")
}

// ByName fetches countries matching a name from /name/{q}.
func (c *Client) ByName(ctx context.Context, name string) ([]entity.Country, error) {
	return c.get(ctx, "/name/"+url.PathEscape(name))
}

// ByRegion fetches the countries of a region from /region/{r}.
func (c *Client) ByRegion(ctx context.Context, region string) ([]entity.Country, error) {
	return c.get(ctx, "/region/"+url.PathEscape(region))
}

// ByCode resolves a single alpha code from /alpha/{code}.
func (c *Client) ByCode(ctx context.Context, code string) ([]entity.Country, error) {
	return c.get(ctx, "/alpha/"+url.PathEscape(code))
}

// ByCodes resolves a batch of alpha codes from /alpha?codes=a,b,c.
func (c *Client) ByCodes(ctx context.Context, codes []string) ([]entity.Country, error) {
	q := url.Values{}
	q.Set("codes", strings.Join(codes, ","))
	return c.get(ctx, "/alpha?"+q.Encode())
}

// get performs one upstream request and maps the response to domain entities.
func (c *Client) get(ctx context.Context, path string) ([]entity.Country, error) {
	u := c.cfg.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorDetail))
		return nil, &usecase.UpstreamError{
			Status: res.StatusCode,
			Detail: strings.TrimSpace(string(detail)),
		}
	}

	var body []dto.CountryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode restcountries response: %w", err)
	}

	countries := make([]entity.Country, 0, len(body))
	for _, v := range body {
		countries = append(countries, toEntity(v))
	}
	return countries, nil
}

// toEntity reduces an upstream record to the fields the application displays.
func toEntity(v dto.CountryResponse) entity.Country {
	var currencies map[string]string
	if len(v.Currencies) > 0 {
		currencies = make(map[string]string, len(v.Currencies))
		for code, cur := range v.Currencies {
			currencies[code] = cur.Name
		}
	}

	return entity.Country{
		Code:         v.CCA3,
		Name:         v.Name.Common,
		OfficialName: v.Name.Official,
		FlagPNG:      v.Flags.PNG,
		FlagSVG:      v.Flags.SVG,
		FlagAlt:      v.Flags.Alt,
		Region:       v.Region,
		Subregion:    v.Subregion,
		Capital:      v.Capital,
		Population:   v.Population,
		Languages:    v.Languages,
		Currencies:   currencies,
	}
}
