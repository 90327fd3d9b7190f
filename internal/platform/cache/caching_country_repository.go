// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"country_backend/internal/feature/countries/domain/entity"
	"country_backend/internal/feature/countries/usecase"
)

// CachingCountryRepository decorates a CountryRepository with Redis caching.
// Upstream country data changes rarely, so every read goes through a TTL
// cache; the decorator is transparent and best effort, and with a nil Redis
// client it degrades to a plain pass-through.
type CachingCountryRepository struct {
	inner     usecase.CountryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.CountryRepository = (*CachingCountryRepository)(nil)

// NewCachingCountryRepository decorates a CountryRepository with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "countries".
func NewCachingCountryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CountryRepository, namespace string) *CachingCountryRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "countries"
	}
	return &CachingCountryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// All retrieves the full catalog, cache first.
func (c *CachingCountryRepository) All(ctx context.Context) ([]entity.Country, error) {
	return c.through(ctx, c.key("all"), func() ([]entity.Country, error) {
		return c.inner.All(ctx)
	})
}

// ByName retrieves countries by name, cache first.
func (c *CachingCountryRepository) ByName(ctx context.Context, name string) ([]entity.Country, error) {
	return c.through(ctx, c.key("name", name), func() ([]entity.Country, error) {
		return c.inner.ByName(ctx, name)
	})
}

// ByRegion retrieves the countries of a region, cache first.
func (c *CachingCountryRepository) ByRegion(ctx context.Context, region string) ([]entity.Country, error) {
	return c.through(ctx, c.key("region", region), func() ([]entity.Country, error) {
		return c.inner.ByRegion(ctx, region)
	})
}

// ByCode resolves one alpha code, cache first.
func (c *CachingCountryRepository) ByCode(ctx context.Context, code string) ([]entity.Country, error) {
	return c.through(ctx, c.key("alpha", code), func() ([]entity.Country, error) {
		return c.inner.ByCode(ctx, code)
	})
}

// ByCodes resolves a batch of alpha codes, cache first. The batch is cached
// under its joined code list, so the same favorites set hits the same key.
func (c *CachingCountryRepository) ByCodes(ctx context.Context, codes []string) ([]entity.Country, error) {
	return c.through(ctx, c.key("alpha", strings.Join(codes, ",")), func() ([]entity.Country, error) {
		return c.inner.ByCodes(ctx, codes)
	})
}

// through implements the cache-aside flow around one catalog read.
func (c *CachingCountryRepository) through(ctx context.Context, key string, load func() ([]entity.Country, error)) ([]entity.Country, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Country
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fall through to the upstream
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// key generates a namespaced cache key for a query.
func (c *CachingCountryRepository) key(parts ...string) string {
	escaped := make([]string, 0, len(parts)+1)
	escaped = append(escaped, c.namespace)
	for _, p := range parts {
		escaped = append(escaped, safe(p))
	}
	return strings.Join(escaped, ":")
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
