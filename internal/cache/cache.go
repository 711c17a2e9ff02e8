package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devkip/clubhub/internal/pkg/logger"
)

// Client wraps redis.Client and fails safe: a missing or unreachable Redis
// behaves like a permanent cache miss so reads fall through to Postgres.
type Client struct {
	client *redis.Client
}

// New creates a new Redis-backed cache client
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Ping checks connectivity. Startup logs the result but does not fail on it.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the cached value, or nil on miss or Redis error
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Debug().Err(err).Str("key", key).Msg("Cache get failed, treating as miss")
		return nil, nil
	}
	return res, nil
}

// Set stores a value with a TTL, ignoring Redis errors
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Debug().Err(err).Str("key", key).Msg("Cache set failed")
	}
}

// Delete removes keys, ignoring Redis errors
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Debug().Err(err).Strs("keys", keys).Msg("Cache delete failed")
	}
}

// Close releases the underlying connection pool
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
