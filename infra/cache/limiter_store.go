// Package cache provides a Redis-backed fiber.Storage so the rate limiter
// keeps shared counters across replicas. With no Redis configured the
// limiter falls back to Fiber's in-memory store.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// LimiterStore implements fiber.Storage on top of Redis.
type LimiterStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewLimiterStore connects to Redis using a redis:// URL.
func NewLimiterStore(url, prefix string, logger *slog.Logger) (*LimiterStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err = client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &LimiterStore{client: client, prefix: prefix, logger: logger}, nil
}

// Get implements fiber.Storage.
func (s *LimiterStore) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

// Set implements fiber.Storage.
func (s *LimiterStore) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), s.prefix+key, val, exp).Err()
}

// Delete implements fiber.Storage.
func (s *LimiterStore) Delete(key string) error {
	return s.client.Del(context.Background(), s.prefix+key).Err()
}

// Reset implements fiber.Storage. Only keys under the store's prefix are
// removed.
func (s *LimiterStore) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn("failed to delete limiter key", "key", iter.Val(), "error", err)
		}
	}
	return iter.Err()
}

// Close implements fiber.Storage.
func (s *LimiterStore) Close() error {
	return s.client.Close()
}
