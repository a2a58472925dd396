package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"

	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/logx"
)

// CachedIndex memoizes availability search results in Redis for a short TTL.
// Only the list/auto-assign screens read through it; single-resource
// Occupied/IsFree checks feeding the validator always hit the store, and the
// commit path never consults the cache at all. A stale entry can therefore
// only cost a wasted validation round-trip, never a double booking.
type CachedIndex struct {
	inner  *Service
	rdb    *redis.Client
	ttl    time.Duration
	logger logx.Logger
}

// NewCachedIndex wraps an availability Service with a Redis cache.
func NewCachedIndex(inner *Service, rdb *redis.Client, ttl time.Duration, logger logx.Logger) *CachedIndex {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &CachedIndex{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

// Occupied passes through; conflict payloads must always be current.
func (c *CachedIndex) Occupied(ctx context.Context, q domain.OccupancyQuery) (*domain.BusyInterval, error) {
	return c.inner.Occupied(ctx, q)
}

// IsFree passes through.
func (c *CachedIndex) IsFree(ctx context.Context, q domain.OccupancyQuery) (bool, error) {
	return c.inner.IsFree(ctx, q)
}

// ListAvailable serves the candidate filter from cache when possible.
func (c *CachedIndex) ListAvailable(ctx context.Context, tenantID int64, kind domain.ResourceKind, candidateIDs []int64, window domain.Interval) ([]int64, error) {
	key := c.listKey(tenantID, kind, candidateIDs, window)

	var cached []int64
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	free, err := c.inner.ListAvailable(ctx, tenantID, kind, candidateIDs, window)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, free)
	return free, nil
}

// AutoAssign serves pairing lookups from cache when possible.
func (c *CachedIndex) AutoAssign(ctx context.Context, tenantID int64, vt domain.VehicleType, window domain.Interval) (*domain.Assignment, error) {
	key := fmt.Sprintf("avail:assign:%d:%s:%d:%d", tenantID, vt, window.Start.Unix(), window.End.Unix())

	var cached *domain.Assignment
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	a, err := c.inner.AutoAssign(ctx, tenantID, vt, window)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, a)
	return a, nil
}

func (c *CachedIndex) listKey(tenantID int64, kind domain.ResourceKind, ids []int64, window domain.Interval) string {
	h := fnv.New64a()
	for _, id := range ids {
		fmt.Fprintf(h, "%d,", id)
	}
	return fmt.Sprintf("avail:list:%d:%s:%d:%d:%x",
		tenantID, kind, window.Start.Unix(), window.End.Unix(), h.Sum64())
}

// lookup decodes a cached value; cache failures degrade to a direct read.
func (c *CachedIndex) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("availability cache read failed", logx.String("key", key), logx.Err(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("availability cache decode failed", logx.String("key", key), logx.Err(err))
		return false
	}
	return true
}

func (c *CachedIndex) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache write failed", logx.String("key", key), logx.Err(err))
	}
}

var _ Index = (*Service)(nil)
var _ Index = (*CachedIndex)(nil)
