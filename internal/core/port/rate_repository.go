package port

import (
	"context"
	"time"

	"ave-engine/internal/core/domain"
)

// RateRepository is the read-only outbound port to the reference-rate
// tables. The engine never writes through it.
type RateRepository interface {
	// GetRateSnapshot returns all four rate tables as they stand for the
	// given day, read consistently in a single pass.
	GetRateSnapshot(ctx context.Context, asOf time.Time) (domain.RateSnapshot, error)
}
