package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fleet-savings-service/internal/domain"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const geocodeKeyPrefix = "geocode:"

// Geocoded coordinates drift only when the address itself changes, so a
// long TTL is safe.
const geocodeTTL = 30 * 24 * time.Hour

// Redis-backed cache mapping address strings to geographic coordinates.
// Useful when several instances share one cache.
type RedisGeocodeCache struct {
	Client *redis.Client
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client}
}

type cachedCoordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Fetch cached coordinates for the given addresses.
func (r *RedisGeocodeCache) GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinate, error) {
	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	if len(addresses) == 0 {
		return map[string]domain.Coordinate{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(addresses))
	keys := make([]string, 0, len(addresses))
	for _, a := range addresses {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}

		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		uniq = append(uniq, a)
		keys = append(keys, geocodeKeyPrefix+a)
	}

	if len(uniq) == 0 {
		return map[string]domain.Coordinate{}, nil
	}

	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Coordinate, len(uniq))
	for i, v := range values {
		if v == nil {
			continue
		}

		raw, ok := v.(string)
		if !ok {
			continue
		}

		var c cachedCoordinate
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("get geocode cache: decode %q: %w", keys[i], err)
		}
		out[uniq[i]] = domain.Coordinate{Lat: c.Lat, Lon: c.Lon}
	}

	return out, nil
}

// Store address -> coordinate mappings in the cache.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinate) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for addr, coord := range results {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("insert geocode cache: empty address key")
		}

		payload, err := json.Marshal(cachedCoordinate{Lat: coord.Lat, Lon: coord.Lon})
		if err != nil {
			return fmt.Errorf("insert geocode cache coord=%q: %w", addr, err)
		}
		pipe.Set(ctx, geocodeKeyPrefix+addr, payload, geocodeTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis pipeline: %w", err)
	}

	return nil
}
