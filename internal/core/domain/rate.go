package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChannelRate is a CPM rate for a channel valid on [EffectiveFrom, EffectiveTo).
// A nil EffectiveTo means the rate is open ended and currently active.
type ChannelRate struct {
	ID            int64           `json:"id"`
	ChannelID     int64           `json:"channel_id"`
	CPMValue      decimal.Decimal `json:"cpm_value"`
	Currency      string          `json:"currency"`
	EffectiveFrom time.Time       `json:"effective_from"`
	EffectiveTo   *time.Time      `json:"effective_to,omitempty"`
}

// ActiveOn reports whether the rate covers the given day.
func (r ChannelRate) ActiveOn(day time.Time) bool {
	day = Day(day)
	if Day(r.EffectiveFrom).After(day) {
		return false
	}
	return r.EffectiveTo == nil || Day(*r.EffectiveTo).After(day)
}

// Overlaps reports whether two rate windows share at least one day.
func (r ChannelRate) Overlaps(other ChannelRate) bool {
	// [a1, a2) and [b1, b2) overlap iff a1 < b2 and b1 < a2.
	before := func(from time.Time, to *time.Time) bool {
		return to == nil || Day(from).Before(Day(*to))
	}
	return before(r.EffectiveFrom, other.EffectiveTo) && before(other.EffectiveFrom, r.EffectiveTo)
}

// PlatformMultiplier adjusts the value of a single channel.
type PlatformMultiplier struct {
	ChannelID  int64           `json:"channel_id"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// EngagementMultiplier is the reference row for one engagement level.
type EngagementMultiplier struct {
	Level      EngagementLevel `json:"level"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// SentimentMultiplier is the reference row for one sentiment value.
type SentimentMultiplier struct {
	Sentiment  Sentiment       `json:"sentiment"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
