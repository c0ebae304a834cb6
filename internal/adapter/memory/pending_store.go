package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"ave-engine/internal/core/domain"
)

// PendingStore is an in-process port.PendingStore for single-instance
// deployments. Entries expire after ttl; a non-positive ttl keeps them
// until they are recorded.
type PendingStore struct {
	entries *cache.Cache
}

// NewPendingStore creates a store whose entries live for ttl.
func NewPendingStore(ttl time.Duration) *PendingStore {
	cleanup := 10 * time.Minute
	if ttl <= 0 {
		ttl = cache.NoExpiration
	} else if ttl < cleanup {
		cleanup = ttl
	}
	return &PendingStore{entries: cache.New(ttl, cleanup)}
}

func (s *PendingStore) Save(_ context.Context, p domain.PendingCalculation) error {
	s.entries.SetDefault(p.IdempotencyKey.String(), p)
	return nil
}

func (s *PendingStore) Load(_ context.Context, key uuid.UUID) (domain.PendingCalculation, error) {
	v, found := s.entries.Get(key.String())
	if !found {
		return domain.PendingCalculation{}, domain.ErrPendingNotFound
	}
	return v.(domain.PendingCalculation), nil
}

func (s *PendingStore) Remove(_ context.Context, key uuid.UUID) error {
	s.entries.Delete(key.String())
	return nil
}
