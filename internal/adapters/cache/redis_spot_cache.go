package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// RedisSpotCache stores raw spot search results with a TTL. Entries are
// keyed by rounded center coordinates plus radius, so nearby repeated
// searches reuse the same Overpass result.
type RedisSpotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSpotCache(client *redis.Client, ttl time.Duration) *RedisSpotCache {
	return &RedisSpotCache{client: client, ttl: ttl}
}

// SpotKey derives the cache key for a spot search. Four decimal places
// (~11 m) keep the key stable across float noise without merging
// genuinely different searches.
func SpotKey(center domain.Coordinates, radiusM int) string {
	return fmt.Sprintf("spots:%.4f:%.4f:%d", center.Lat, center.Lon, radiusM)
}

func (c *RedisSpotCache) Get(ctx context.Context, key string) ([]ports.RawSpot, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("spot cache: client is nil")
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get spot cache %q: %w", key, err)
	}

	var spots []ports.RawSpot
	if err := json.Unmarshal(payload, &spots); err != nil {
		return nil, false, fmt.Errorf("get spot cache %q: unmarshal: %w", key, err)
	}

	return spots, true, nil
}

func (c *RedisSpotCache) Put(ctx context.Context, key string, spots []ports.RawSpot) error {
	if c.client == nil {
		return errors.New("spot cache: client is nil")
	}

	payload, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("insert spot cache %q: marshal: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert spot cache %q: %w", key, err)
	}

	return nil
}

// CachedSpotSource decorates a SpotSource with a SpotCache. Cache
// failures are logged and degrade to a direct fetch.
type CachedSpotSource struct {
	inner ports.SpotSource
	cache ports.SpotCache
}

func NewCachedSpotSource(inner ports.SpotSource, cache ports.SpotCache) *CachedSpotSource {
	return &CachedSpotSource{inner: inner, cache: cache}
}

func (c *CachedSpotSource) FetchSpots(ctx context.Context, center domain.Coordinates, radiusM int) ([]ports.RawSpot, error) {
	key := SpotKey(center, radiusM)

	spots, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Printf("spot cache read failed: %v", err)
	} else if ok {
		return spots, nil
	}

	spots, err = c.inner.FetchSpots(ctx, center, radiusM)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(ctx, key, spots); err != nil {
		log.Printf("spot cache write failed: %v", err)
	}

	return spots, nil
}
