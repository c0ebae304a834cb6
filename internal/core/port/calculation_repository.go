package port

import (
	"context"

	"github.com/google/uuid"

	"ave-engine/internal/core/domain"
)

// CalculationLogRepository is the append-only audit store. Implementations
// must make Append all-or-nothing and idempotent per IdempotencyKey: a
// second Append with a key already stored returns the stored log instead
// of inserting a duplicate.
type CalculationLogRepository interface {
	Append(ctx context.Context, log domain.CalculationLog) (domain.CalculationLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.CalculationLog, error)
	GetByIdempotencyKey(ctx context.Context, key uuid.UUID) (domain.CalculationLog, error)
	// List returns logs matching the filter, newest first.
	List(ctx context.Context, filter domain.LogFilter) ([]domain.CalculationLog, error)
}

// PendingStore parks computed results whose audit write has not succeeded
// yet, so the write can be retried on its own.
type PendingStore interface {
	Save(ctx context.Context, p domain.PendingCalculation) error
	// Load returns domain.ErrPendingNotFound for unknown or expired keys.
	Load(ctx context.Context, key uuid.UUID) (domain.PendingCalculation, error)
	Remove(ctx context.Context, key uuid.UUID) error
}

// EventPublisher announces recorded calculations to downstream consumers.
// Publishing is best effort and happens after the log is committed.
type EventPublisher interface {
	PublishRecorded(ctx context.Context, log domain.CalculationLog) error
}
