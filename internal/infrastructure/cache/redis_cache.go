package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"newscred/internal/ports"
)

// RedisScoreCache remembers final scores keyed by a content hash, so
// resubmitting identical text skips the network-bound analysis.
type RedisScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.ScoreCache = (*RedisScoreCache)(nil)

// NewRedisScoreCache connects to Redis and verifies connectivity.
func NewRedisScoreCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisScoreCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisScoreCache{client: client, ttl: ttl}, nil
}

// Get returns the cached score, reporting whether the key was present.
func (c *RedisScoreCache) Get(ctx context.Context, key string) (float64, bool, error) {
	score, err := c.client.Get(ctx, key).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get: %w", err)
	}
	return score, true, nil
}

// Set stores the score with the configured TTL.
func (c *RedisScoreCache) Set(ctx context.Context, key string, score float64) error {
	if err := c.client.Set(ctx, key, score, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *RedisScoreCache) Close() error {
	return c.client.Close()
}
