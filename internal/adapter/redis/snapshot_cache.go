package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ave-engine/internal/core/domain"
	"ave-engine/internal/core/port"
	"ave-engine/internal/metrics"
)

const snapshotKeyPrefix = "ave:snapshot:"

// SnapshotCache decorates a port.RateRepository with a short-lived Redis
// cache keyed by as-of day. A cached snapshot is still one consistent read
// of the tables; the TTL bounds how stale it may be. Redis failures fall
// back to the wrapped repository.
type SnapshotCache struct {
	next    port.RateRepository
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewSnapshotCache wraps next.
func NewSnapshotCache(next port.RateRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *SnapshotCache {
	return &SnapshotCache{next: next, client: client, ttl: ttl, logger: logger, metrics: m}
}

func (c *SnapshotCache) GetRateSnapshot(ctx context.Context, asOf time.Time) (domain.RateSnapshot, error) {
	key := snapshotKey(asOf)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var snap domain.RateSnapshot
		if err = json.Unmarshal(raw, &snap); err == nil {
			c.metrics.RecordSnapshotCache("hit")
			return snap, nil
		}
		c.logger.Warn("decode cached snapshot", slog.String("key", key), slog.Any("error", err))
		c.metrics.RecordSnapshotCache("error")
	case errors.Is(err, redis.Nil):
		c.metrics.RecordSnapshotCache("miss")
	default:
		c.logger.Warn("read cached snapshot", slog.String("key", key), slog.Any("error", err))
		c.metrics.RecordSnapshotCache("error")
	}

	snap, err := c.next.GetRateSnapshot(ctx, asOf)
	if err != nil {
		return domain.RateSnapshot{}, err
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return snap, nil
	}
	if err = c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache snapshot", slog.String("key", key), slog.Any("error", err))
	}
	return snap, nil
}

func snapshotKey(asOf time.Time) string {
	return snapshotKeyPrefix + domain.Day(asOf).Format(domain.DateLayout)
}
