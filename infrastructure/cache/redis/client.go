// ABOUTME: Redis cache implementation using go-redis with ReJSON document storage
// ABOUTME: Values are JSON payloads, stored as documents; Redis expires keys natively

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nitishm/go-rejson/v4"
	goredis "github.com/redis/go-redis/v9"

	"mlcatalog-api/pkg/config"
)

// ErrCacheMiss is returned when a key is absent or already expired.
var ErrCacheMiss = errors.New("cache: key not found")

// RedisCache implements the Cache interface using Redis. Cached values in
// this service are always JSON payloads, so they are stored as ReJSON
// documents rather than opaque strings. Redis handles TTL expiry itself, so
// this backend does not implement the Evictor sweep.
type RedisCache struct {
	client  *goredis.Client
	handler *rejson.Handler
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &RedisCache{
		client:  client,
		handler: handler,
	}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.handler.JSONGet(key, ".")
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	data, ok := val.([]byte)
	if !ok || len(data) == 0 {
		return nil, ErrCacheMiss
	}
	return data, nil
}

// Set stores a value in Redis with the given TTL. The value must be valid
// JSON; a zero TTL stores the document without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if _, err := c.handler.JSONSet(key, ".", json.RawMessage(value)); err != nil {
		return err
	}

	if ttl != 0 {
		return c.client.Expire(ctx, key, ttl).Err()
	}
	return nil
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	// Deleting a nonexistent key is not an error for our use case.
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
