// Package cache provides storage backends for loaded currency catalogs so a
// session restart within the TTL does not refetch the upstream feed.
package cache

import (
	"context"
	"time"

	"github.com/amirasaad/swapflow/pkg/currency"
)

// CatalogCache stores loaded catalogs keyed by source identity.
// Get returns (nil, nil) on a cache miss.
type CatalogCache interface {
	Get(ctx context.Context, key string) (*currency.Catalog, error)
	Set(ctx context.Context, key string, cat *currency.Catalog, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
