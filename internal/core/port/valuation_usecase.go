package port

import (
	"context"

	"github.com/google/uuid"

	"ave-engine/internal/core/domain"
)

// ValuationUseCase is the primary port into the AVE engine.
type ValuationUseCase interface {
	// Calculate validates the request, takes one rate snapshot and computes
	// the result. Nothing is persisted.
	Calculate(ctx context.Context, req domain.CalculationRequest) (domain.CalculationResult, error)

	// Evaluate computes and then records the result under key. A failed
	// audit write does not discard the result: the outcome carries it with
	// StateRecordFailed and the write can be retried with RetryRecord.
	// A key already recorded for the same request returns the stored log
	// and its result; a key bound to a different request or result fails
	// with domain.ErrIdempotencyConflict.
	Evaluate(ctx context.Context, key uuid.UUID, req domain.CalculationRequest) (Outcome, error)

	// RetryRecord repeats the audit write of a previously computed result.
	// When the key is already recorded the existing log is returned.
	RetryRecord(ctx context.Context, key uuid.UUID) (domain.CalculationLog, error)

	GetLog(ctx context.Context, id uuid.UUID) (domain.CalculationLog, error)
	ListLogs(ctx context.Context, filter domain.LogFilter) ([]domain.CalculationLog, error)
}

// Outcome is the result of Evaluate. Log is set only when State is
// StateRecorded; RecordErr only when it is StateRecordFailed.
type Outcome struct {
	IdempotencyKey uuid.UUID
	State          domain.CalculationState
	Result         domain.CalculationResult
	Log            *domain.CalculationLog
	RecordErr      error
}
