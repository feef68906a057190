// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage, and enrichment

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains catalog store configuration
	Storage StorageConfig

	// Enrichment contains external enrichment configuration
	Enrichment EnrichmentConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// LogLevel controls the minimum logged level
	LogLevel string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// StorageConfig holds catalog store configuration
type StorageConfig struct {
	// SQLitePath is the catalog database file path
	SQLitePath string
}

// EnrichmentConfig holds external enrichment configuration
type EnrichmentConfig struct {
	// GitHubToken is the optional bearer token for the hosting API
	GitHubToken string

	// GitHubRequestsPerSecond bounds the request rate against the hosting API
	GitHubRequestsPerSecond float64

	// EntityIntervalMs is the pacing between models in a bulk run
	EntityIntervalMs int

	// FetchTimeoutSeconds bounds each external sub-fetch
	FetchTimeoutSeconds int

	// StaleMaxAgeHours is the default staleness threshold for bulk refreshes
	StaleMaxAgeHours int

	// StaleBatchLimit is the default batch cap for bulk refreshes
	StaleBatchLimit int

	// SweepIntervalMinutes schedules a periodic stale sweep; zero disables it
	SweepIntervalMinutes int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnvOrDefault("PORT", "8000"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("CATALOG_DB_PATH", "catalog.db"),
		},
		Enrichment: EnrichmentConfig{
			GitHubToken:             getEnvOrDefault("GITHUB_TOKEN", ""),
			GitHubRequestsPerSecond: getEnvAsFloatOrDefault("GITHUB_REQUESTS_PER_SECOND", 1),
			EntityIntervalMs:        getEnvAsIntOrDefault("ENRICH_ENTITY_INTERVAL_MS", 500),
			FetchTimeoutSeconds:     getEnvAsIntOrDefault("ENRICH_FETCH_TIMEOUT_SECONDS", 30),
			StaleMaxAgeHours:        getEnvAsIntOrDefault("ENRICH_STALE_MAX_AGE_HOURS", 24),
			StaleBatchLimit:         getEnvAsIntOrDefault("ENRICH_STALE_BATCH_LIMIT", 50),
			SweepIntervalMinutes:    getEnvAsIntOrDefault("ENRICH_SWEEP_INTERVAL_MINUTES", 0),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Storage.SQLitePath == "" {
		return errors.New("catalog database path cannot be empty")
	}

	if c.Enrichment.GitHubRequestsPerSecond <= 0 {
		return errors.New("github request rate must be positive")
	}

	if c.Enrichment.EntityIntervalMs < 0 {
		return errors.New("entity interval cannot be negative")
	}

	if c.Enrichment.StaleMaxAgeHours < 1 {
		return errors.New("stale max age must be at least 1 hour")
	}

	if c.Enrichment.StaleBatchLimit < 1 {
		return errors.New("stale batch limit must be at least 1")
	}

	if c.Enrichment.SweepIntervalMinutes < 0 {
		return errors.New("sweep interval cannot be negative")
	}

	return nil
}
