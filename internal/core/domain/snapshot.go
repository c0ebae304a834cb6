package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot is a consistent point-in-time read of all reference-rate
// tables. One snapshot is taken per calculation and threaded through every
// lookup, so concurrent edits to the tables never mix within a calculation.
type RateSnapshot struct {
	AsOf     time.Time `json:"as_of"`
	TakenAt  time.Time `json:"taken_at"`
	Currency string    `json:"currency"`

	Rates      map[int64][]ChannelRate             `json:"rates"`
	Platform   map[int64]decimal.Decimal           `json:"platform"`
	Engagement map[EngagementLevel]decimal.Decimal `json:"engagement"`
	Sentiment  map[Sentiment]decimal.Decimal       `json:"sentiment"`
}

// NewRateSnapshot returns an empty snapshot ready to be filled.
func NewRateSnapshot(asOf time.Time, currency string) RateSnapshot {
	return RateSnapshot{
		AsOf:       Day(asOf),
		TakenAt:    time.Now().UTC(),
		Currency:   currency,
		Rates:      make(map[int64][]ChannelRate),
		Platform:   make(map[int64]decimal.Decimal),
		Engagement: make(map[EngagementLevel]decimal.Decimal),
		Sentiment:  make(map[Sentiment]decimal.Decimal),
	}
}

// AddRate appends a channel rate row.
func (s *RateSnapshot) AddRate(r ChannelRate) {
	s.Rates[r.ChannelID] = append(s.Rates[r.ChannelID], r)
}

// RateOverlap names two rate rows of the same channel whose windows intersect.
type RateOverlap struct {
	ChannelID int64
	First     int64
	Second    int64
}

// Overlaps reports every pair of overlapping rate windows held by the
// snapshot. A non-empty result means the rate table is inconsistent.
func (s RateSnapshot) Overlaps() []RateOverlap {
	var out []RateOverlap
	for channelID, rates := range s.Rates {
		for i := 0; i < len(rates); i++ {
			for j := i + 1; j < len(rates); j++ {
				if rates[i].Overlaps(rates[j]) {
					out = append(out, RateOverlap{ChannelID: channelID, First: rates[i].ID, Second: rates[j].ID})
				}
			}
		}
	}
	return out
}
