package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculationTypeAVE tags logs produced by the AVE valuation engine.
const CalculationTypeAVE = "ave"

// ChannelInput is one channel/impressions pair of a request.
type ChannelInput struct {
	ChannelID   int64 `json:"channelId"`
	Impressions int64 `json:"impressions"`
}

// Attribution links a calculation to whoever ran it and what it was for.
type Attribution struct {
	ActorID    int64
	CampaignID *int64
	BrandID    *int64
}

// CalculationRequest is the input collected for a single valuation. It is
// consumed once by the engine.
type CalculationRequest struct {
	Channels          []ChannelInput
	IncludePlatform   bool
	IncludeEngagement bool
	EngagementLevel   *EngagementLevel
	IncludeSentiment  bool
	Sentiment         *Sentiment
	AsOfDate          time.Time
	Attribution       Attribution
}

// ChannelBreakdown is the engine output for one input channel.
// ChannelValue is always BaseValue × PlatformMultiplier ×
// EngagementMultiplier × SentimentMultiplier.
type ChannelBreakdown struct {
	ChannelID            int64           `json:"channelId"`
	Impressions          int64           `json:"impressions"`
	RateID               *int64          `json:"rateId,omitempty"`
	ResolvedCPM          decimal.Decimal `json:"resolvedCpm"`
	BaseValue            decimal.Decimal `json:"baseValue"`
	PlatformMultiplier   decimal.Decimal `json:"platformMultiplier"`
	EngagementMultiplier decimal.Decimal `json:"engagementMultiplier"`
	SentimentMultiplier  decimal.Decimal `json:"sentimentMultiplier"`
	ChannelValue         decimal.Decimal `json:"channelValue"`
	RateMissing          bool            `json:"rateMissing"`
	RateOverlap          bool            `json:"rateOverlap,omitempty"`
}

// CalculationResult holds the per-channel breakdown and its sum.
type CalculationResult struct {
	Breakdown  []ChannelBreakdown `json:"breakdown"`
	FinalValue decimal.Decimal    `json:"finalValue"`
	Currency   string             `json:"currency,omitempty"`
}

// Warning describes a per-channel condition the caller should surface.
type Warning struct {
	ChannelID int64  `json:"channelId"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

const (
	WarningRateMissing = "rate_missing"
	WarningRateOverlap = "rate_overlap"
)

// Warnings lists channels whose value could not be fully resolved.
func (r CalculationResult) Warnings() []Warning {
	var out []Warning
	for _, b := range r.Breakdown {
		if b.RateMissing {
			out = append(out, Warning{ChannelID: b.ChannelID, Code: WarningRateMissing, Message: "no CPM rate effective on the requested date"})
		}
		if b.RateOverlap {
			out = append(out, Warning{ChannelID: b.ChannelID, Code: WarningRateOverlap, Message: "overlapping CPM rate windows, latest effective rate used"})
		}
	}
	return out
}

// AllRatesMissing reports whether no channel resolved a rate.
func (r CalculationResult) AllRatesMissing() bool {
	if len(r.Breakdown) == 0 {
		return false
	}
	for _, b := range r.Breakdown {
		if !b.RateMissing {
			return false
		}
	}
	return true
}

// PendingCalculation is a computed result that has not been recorded yet.
// It is kept so the audit write can be retried without recomputing.
type PendingCalculation struct {
	IdempotencyKey uuid.UUID          `json:"idempotency_key"`
	Request        CalculationRequest `json:"request"`
	Result         CalculationResult  `json:"result"`
	ComputedAt     time.Time          `json:"computed_at"`
}
