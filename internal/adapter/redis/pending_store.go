package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ave-engine/internal/core/domain"
)

const pendingKeyPrefix = "ave:pending:"

// PendingStore keeps computed-but-unrecorded calculations in Redis so a
// record retry can reach any instance of the service.
type PendingStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPendingStore(client *redis.Client, ttl time.Duration) *PendingStore {
	return &PendingStore{client: client, ttl: ttl}
}

func (s *PendingStore) Save(ctx context.Context, p domain.PendingCalculation) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pending calculation: %w", err)
	}
	return s.client.Set(ctx, pendingKeyPrefix+p.IdempotencyKey.String(), payload, s.ttl).Err()
}

func (s *PendingStore) Load(ctx context.Context, key uuid.UUID) (domain.PendingCalculation, error) {
	raw, err := s.client.Get(ctx, pendingKeyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PendingCalculation{}, domain.ErrPendingNotFound
	}
	if err != nil {
		return domain.PendingCalculation{}, err
	}
	var p domain.PendingCalculation
	if err = json.Unmarshal(raw, &p); err != nil {
		return domain.PendingCalculation{}, fmt.Errorf("decode pending calculation: %w", err)
	}
	return p, nil
}

func (s *PendingStore) Remove(ctx context.Context, key uuid.UUID) error {
	return s.client.Del(ctx, pendingKeyPrefix+key.String()).Err()
}
