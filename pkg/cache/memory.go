package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/swapflow/pkg/currency"
)

type memoryEntry struct {
	catalog   *currency.Catalog
	expiresAt time.Time
}

// MemoryCache implements CatalogCache using in-memory storage.
type MemoryCache struct {
	entries map[string]*memoryEntry
	mu      sync.RWMutex
}

// NewMemoryCache creates a new in-memory catalog cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*memoryEntry)}
}

// Get retrieves a catalog from cache. Expired entries count as a miss.
func (c *MemoryCache) Get(_ context.Context, key string) (*currency.Catalog, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		return nil, nil
	}
	return entry.catalog, nil
}

// Set stores a catalog in cache with TTL.
func (c *MemoryCache) Set(_ context.Context, key string, cat *currency.Catalog, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &memoryEntry{
		catalog:   cat,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a catalog from cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
