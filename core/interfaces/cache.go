// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, or any other caching solution.
//
// Get enforces freshness: a stale entry and a missing entry are
// indistinguishable to callers. Concurrent Get/Set are safe, but a
// check-miss-fetch-set sequence is not atomic; two concurrent misses for the
// same key may both fetch, and the last Set wins. Cached values are idempotent
// snapshots of external truth, so the lost update is accepted.
type Cache interface {
	// Get retrieves a fresh value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't
	// exist or has exceeded its TTL.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}

// Evictor is implemented by cache backends that need an explicit sweep of
// expired entries to bound memory. Get already enforces freshness, so the
// sweep is opportunistic, not required for correctness. Backends with native
// expiry (e.g. Redis) do not implement it.
type Evictor interface {
	// EvictExpired removes every entry whose age has exceeded its TTL.
	EvictExpired(ctx context.Context) error
}
