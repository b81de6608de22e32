package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/swapflow/pkg/cache"
	"github.com/amirasaad/swapflow/pkg/currency"
)

// CachedSource decorates a Source with a catalog cache: a load hits the
// cache first and stores fresh results with the configured TTL.
type CachedSource struct {
	inner  Source
	cache  cache.CatalogCache
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedSource creates a CachedSource around inner.
func NewCachedSource(inner Source, c cache.CatalogCache, key string, ttl time.Duration, logger *slog.Logger) *CachedSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedSource{inner: inner, cache: c, key: key, ttl: ttl, logger: logger}
}

// Load returns the cached catalog when present, otherwise loads from the
// inner source and caches the result. A cache store failure is logged, not
// propagated.
func (s *CachedSource) Load(ctx context.Context) (*currency.Catalog, error) {
	if cat, err := s.cache.Get(ctx, s.key); err == nil && cat != nil {
		s.logger.Debug("catalog served from cache", "key", s.key, "currencies", cat.Len())
		return cat, nil
	}

	cat, err := s.inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, s.key, cat, s.ttl); err != nil {
		s.logger.Error("failed to cache catalog", "key", s.key, "error", err)
	}
	return cat, nil
}
