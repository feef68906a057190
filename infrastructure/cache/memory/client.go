// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides TTL enforcement on reads plus an explicit expired-entry sweep

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is absent or its entry has expired.
// Callers cannot distinguish the two cases; both mean "fetch fresh data".
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache and Evictor interfaces using go-cache.
// go-cache's own janitor is disabled; the enrichment orchestrator drives
// eviction sweeps explicitly before bulk passes.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance. defaultTTL applies
// to entries stored with a zero TTL.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, 0),
	}
}

// Get retrieves a fresh value from the cache. Expired entries are reported
// as misses; go-cache checks expiry on read.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	// Return a copy so callers can't mutate the cached value.
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL uses the
// cache's default expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	c.cache.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// EvictExpired removes every entry whose age has exceeded its TTL. Get
// already enforces freshness; this sweep exists to bound memory.
func (c *MemoryCache) EvictExpired(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.DeleteExpired()
	return nil
}

// Count returns the number of entries currently held, expired or not.
func (c *MemoryCache) Count() int {
	return c.cache.ItemCount()
}
