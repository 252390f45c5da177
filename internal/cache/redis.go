package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs two concerns: the access-token denylist written on logout
// and the dashboard statistics cache. Callers treat it as optional; when
// Redis is down the console keeps working without it (fail-open).
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("Connected to Redis at %s", redisURL)
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// DenyToken records a revoked access token until its natural expiry.
func (c *RedisCache) DenyToken(ctx context.Context, token string, until time.Duration) error {
	if until <= 0 {
		return nil
	}
	return c.client.Set(ctx, denyKey(token), "1", until).Err()
}

// IsTokenDenied reports whether the token was revoked by a logout.
func (c *RedisCache) IsTokenDenied(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, denyKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func denyKey(token string) string {
	return "denied_token:" + token
}

// StatsKey is where the dashboard statistics payload is cached.
const StatsKey = "dashboard:stats"
