package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	cacheport "github.com/fintrackr/finance_tracker_app/internal/core/ports/cache"
)

// dashboardKeyPattern matches every derived-view entry. Invalidate drops
// them all at once instead of tracking individual keys.
const dashboardKeyPattern = "dashboard:*"

const defaultTTL = 60 * time.Second

// SnapshotCache stores JSON-encoded dashboard views in Redis. All operations
// are best-effort: Redis being down makes the cache behave as empty, it never
// fails a request.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ cacheport.SnapshotCache = (*SnapshotCache)(nil)

// NewSnapshotCache creates a dashboard cache on top of client.
func NewSnapshotCache(client *redis.Client, logger *slog.Logger) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		ttl:    defaultTTL,
		logger: logger,
	}
}

// Get unmarshals the cached value for key into dest, reporting whether a
// usable entry was found.
func (c *SnapshotCache) Get(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("Cache lookup failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("Discarding undecodable cache entry", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// Set stores value under key with the default TTL.
func (c *SnapshotCache) Set(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to encode cache entry", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Debug("Cache store failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Invalidate drops every dashboard entry.
func (c *SnapshotCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, dashboardKeyPattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Debug("Cache invalidation scan failed", slog.String("error", err.Error()))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("Cache invalidation failed", slog.String("error", err.Error()))
	}
}
