package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPolylineCache is a PolylineStore that relies on Redis key expiry.
type RedisPolylineCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisPolylineCache(client *redis.Client, ttl time.Duration) *RedisPolylineCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisPolylineCache{client: client, ttl: ttl, prefix: "directions:"}
}

// NewRedisClient parses redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, cacheQueryTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func (r *RedisPolylineCache) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, cacheQueryTimeout)
	defer cancel()

	points, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get polyline cache: %w", err)
	}
	return points, true, nil
}

func (r *RedisPolylineCache) Put(ctx context.Context, key string, points string) error {
	ctx, cancel := context.WithTimeout(ctx, cacheQueryTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, points, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert polyline cache key=%q: %w", key, err)
	}
	return nil
}
