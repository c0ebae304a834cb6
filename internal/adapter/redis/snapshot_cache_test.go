package redisadapter

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ave-engine/internal/core/domain"
	"ave-engine/internal/core/port/mocks"
)

func TestSnapshotKeyIgnoresTimeOfDay(t *testing.T) {
	a := snapshotKey(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	b := snapshotKey(time.Date(2025, 3, 15, 18, 45, 0, 0, time.UTC))
	assert.Equal(t, "ave:snapshot:2025-03-15", a)
	assert.Equal(t, a, b)
}

// TestSnapshotCacheFallsBackWhenRedisIsDown points the client at a closed
// port: every cache call fails and the wrapped repository must answer.
func TestSnapshotCacheFallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	want := domain.NewRateSnapshot(asOf, "IDR")
	next := mocks.NewMockRateRepository(t)
	next.EXPECT().GetRateSnapshot(mock.Anything, asOf).Return(want, nil).Once()

	cache := NewSnapshotCache(next, client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	got, err := cache.GetRateSnapshot(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, want.AsOf, got.AsOf)
	assert.Equal(t, "IDR", got.Currency)
}
