package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"location-agent/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "geocode:"

// GeocodeCache stores resolved addresses in Redis keyed by the normalized query.
type GeocodeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewGeocodeCache creates a cache whose entries expire after ttl. A zero ttl keeps entries forever.
func NewGeocodeCache(rdb *redis.Client, ttl time.Duration) *GeocodeCache {
	return &GeocodeCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached location for query, or nil on a miss.
func (c *GeocodeCache) Get(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	raw, err := c.rdb.Get(ctx, Key(query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache: get %q: %w", query, err)
	}

	var loc models.ResolvedLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, fmt.Errorf("cache: decode %q: %w", query, err)
	}
	return &loc, nil
}

// Set stores loc under query.
func (c *GeocodeCache) Set(ctx context.Context, query string, loc models.ResolvedLocation) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", query, err)
	}

	if err := c.rdb.Set(ctx, Key(query), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %q: %w", query, err)
	}
	return nil
}

// Key normalizes query so that case and surrounding whitespace do not split entries.
func Key(query string) string {
	return keyPrefix + strings.ToLower(strings.Join(strings.Fields(query), " "))
}
