package valuation

import (
	"github.com/shopspring/decimal"

	"ave-engine/internal/core/domain"
)

// Aggregate folds channel breakdowns into a result whose FinalValue is the
// sum of every ChannelValue. A result where every rate is missing sums to
// zero; surfacing that is up to the caller.
func Aggregate(breakdowns []domain.ChannelBreakdown) domain.CalculationResult {
	total := decimal.Zero
	for _, b := range breakdowns {
		total = total.Add(b.ChannelValue)
	}
	return domain.CalculationResult{Breakdown: breakdowns, FinalValue: total}
}
