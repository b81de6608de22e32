package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/swapflow/pkg/currency"
	"github.com/redis/go-redis/v9"
)

// RedisCatalogCache implements CatalogCache using Redis.
type RedisCatalogCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisCatalogCache creates a new RedisCatalogCache from redis.Options.
func NewRedisCatalogCache(opt *redis.Options, prefix string, logger *slog.Logger) *RedisCatalogCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCatalogCache{client: redis.NewClient(opt), prefix: prefix, logger: logger}
}

func (r *RedisCatalogCache) key(key string) string {
	return r.prefix + key
}

// Get retrieves a catalog from Redis. A missing key is a cache miss, not an error.
func (r *RedisCatalogCache) Get(ctx context.Context, key string) (*currency.Catalog, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("redis cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("redis cache get error", "key", key, "error", err)
		return nil, err
	}
	var cat currency.Catalog
	if err := json.Unmarshal([]byte(val), &cat); err != nil {
		r.logger.Error("redis cache unmarshal error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("redis cache hit", "key", key, "currencies", cat.Len())
	return &cat, nil
}

// Set stores a catalog in Redis with TTL.
func (r *RedisCatalogCache) Set(ctx context.Context, key string, cat *currency.Catalog, ttl time.Duration) error {
	data, err := json.Marshal(cat)
	if err != nil {
		r.logger.Error("redis cache marshal error", "key", key, "error", err)
		return err
	}
	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		r.logger.Error("redis cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("redis cache set", "key", key, "currencies", cat.Len(), "ttl", ttl)
	return nil
}

// Delete removes a catalog from Redis.
func (r *RedisCatalogCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}
