// Package cache builds the Redis client used for rate limiting.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/config"
)

// NewRedisClient connects and pings Redis. It returns nil when the server is
// unreachable so callers degrade by disabling rate limiting.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable addr=%s error=%v", cfg.Addr, err)
		_ = client.Close()
		return nil
	}
	return client
}
