// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, persistence, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory TTL cache backed by go-cache
// - cache/redis: Redis-based cache storing JSON documents via RedisJSON
// - storage/sqlite: SQLite-backed catalog store for models and enrichment
// - http/standard: Standard library HTTP client without retry logic
// - logger/logrus: Structured JSON logger backed by logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(1 * time.Hour)
//	err := cache.Set(ctx, "key", []byte(`{"stars":42}`), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # Catalog Store
//
//	store, err := sqlite.NewStore("catalog.db")
//	model, err := store.GetModel(ctx, "model-id")
//
package infrastructure
