package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel-search-service/internal/platform/metrics"
	"hotel-search-service/internal/services"
)

const searchKeyPrefix = "hotelsearch:q:"

// Redis-backed implementation of the search cache. Pages are stored as JSON
// under one shared prefix so a mutation can drop all of them in one sweep.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSearchCache(addr, password string, ttl time.Duration) (*RedisSearchCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis search cache: ping %q: %w", addr, err)
	}
	return &RedisSearchCache{client: client, ttl: ttl}, nil
}

// Get returns the cached page, or (nil, nil) on a miss.
func (c *RedisSearchCache) Get(ctx context.Context, key string) (*services.SearchPage, error) {
	data, err := c.client.Get(ctx, searchKeyPrefix+key).Bytes()
	if err == redis.Nil {
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis search cache: get: %w", err)
	}

	var page services.SearchPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("redis search cache: decode: %w", err)
	}
	metrics.CacheHitsTotal.Inc()
	return &page, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, page *services.SearchPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("redis search cache: encode: %w", err)
	}
	if err := c.client.Set(ctx, searchKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis search cache: set: %w", err)
	}
	return nil
}

// InvalidateAll removes every cached page by scanning the shared prefix.
// The dataset is small, so SCAN+DEL is cheap enough here.
func (c *RedisSearchCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis search cache: del %q: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis search cache: scan: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *RedisSearchCache) Close() error {
	return c.client.Close()
}
