package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ave-engine/internal/core/domain"
)

func TestAggregate(t *testing.T) {
	res := Aggregate([]domain.ChannelBreakdown{
		{ChannelID: 1, ChannelValue: dec("0.1")},
		{ChannelID: 2, ChannelValue: dec("0.2")},
		{ChannelID: 3, ChannelValue: dec("0"), RateMissing: true},
	})
	// exact decimal sum, no binary float drift
	assert.Equal(t, "0.3", res.FinalValue.String())
	assert.Len(t, res.Breakdown, 3)

	empty := Aggregate(nil)
	assert.True(t, empty.FinalValue.IsZero())
}
