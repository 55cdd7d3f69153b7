package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/config"
)

// NewRedisClient creates a Redis client, or nil when Redis is not configured.
// Callers treat a nil client as "caching disabled".
func NewRedisClient(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	addr := cfg.Redis.Addr()
	if addr == "" {
		logger.Info("redis not configured, page cache and rate limiting disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("successfully connected to Redis", zap.String("addr", addr))
	return client, nil
}
