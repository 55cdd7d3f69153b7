// Package cache holds the Redis-backed page cache for catalog reads.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/catalog"
)

const keyPrefix = "pantrychef:pages:"

// PageCache caches catalog page responses in Redis with a short TTL.
// A nil Redis client disables it; cache errors never fail a request.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewPageCache creates a page cache. client may be nil.
func NewPageCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *PageCache {
	return &PageCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func pageKey(page, limit int) string {
	return fmt.Sprintf("%s%d:%d", keyPrefix, page, limit)
}

// Get returns the cached page, or (nil, false) on miss or any cache error.
func (c *PageCache) Get(ctx context.Context, page, limit int) (*catalog.PageResult, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, pageKey(page, limit)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Debug("page cache read failed", zap.Error(err))
		return nil, false
	}

	var result catalog.PageResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Debug("page cache entry unreadable", zap.Error(err))
		return nil, false
	}
	return &result, true
}

// Set stores a page result under its page/limit key.
func (c *PageCache) Set(ctx context.Context, result *catalog.PageResult) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Debug("page cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, pageKey(result.Page, result.Limit), data, c.ttl).Err(); err != nil {
		c.logger.Debug("page cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached page. Called after any ingestion, since new
// records change totals and page boundaries.
func (c *PageCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Debug("page cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("page cache invalidation failed", zap.Error(err))
	}
}
