package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPreviewCache implements port.PreviewCache on Redis. Schedule previews
// are pure functions of their key, so entries carry a TTL only to bound
// memory, never because they can go stale.
type RedisPreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPreviewCache connects a preview cache to the given Redis address.
func NewRedisPreviewCache(addr string, ttl time.Duration) *RedisPreviewCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisPreviewCache{client: rdb, ttl: ttl}
}

// Get returns the cached payload for key, if present.
func (c *RedisPreviewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores the payload under key.
func (c *RedisPreviewCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Close releases the underlying connection.
func (c *RedisPreviewCache) Close() error {
	return c.client.Close()
}
