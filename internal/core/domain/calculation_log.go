package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculationLog is the immutable audit record of one successful
// calculation. It carries the rates and multipliers actually used, so the
// final value can be explained after the reference tables change.
type CalculationLog struct {
	ID              uuid.UUID  `json:"id"`
	IdempotencyKey  uuid.UUID  `json:"idempotencyKey"`
	CreatedAt       time.Time  `json:"createdAt"`
	ActorID         int64      `json:"actorId"`
	CampaignID      *int64     `json:"campaignId"`
	BrandID         *int64     `json:"brandId"`
	CalculationType string     `json:"calculationType"`
	Inputs          LogInputs  `json:"inputs"`
	Results         LogResults `json:"results"`
}

type LogInputs struct {
	Channels           []ChannelInput     `json:"channels"`
	MultipliersApplied MultipliersApplied `json:"multipliersApplied"`
	AsOfDate           string             `json:"asOfDate"`
}

type MultipliersApplied struct {
	Platform   bool             `json:"platform"`
	Engagement *EngagementLevel `json:"engagement"`
	Sentiment  *Sentiment       `json:"sentiment"`
}

type LogResults struct {
	PerChannel []LogChannelResult `json:"perChannel"`
	FinalValue decimal.Decimal    `json:"finalValue"`
	Currency   string             `json:"currency,omitempty"`
}

type LogChannelResult struct {
	ChannelID            int64           `json:"channelId"`
	RateID               *int64          `json:"rateId,omitempty"`
	ResolvedCPM          decimal.Decimal `json:"resolvedCpm"`
	BaseValue            decimal.Decimal `json:"baseValue"`
	PlatformMultiplier   decimal.Decimal `json:"platformMultiplier"`
	EngagementMultiplier decimal.Decimal `json:"engagementMultiplier"`
	SentimentMultiplier  decimal.Decimal `json:"sentimentMultiplier"`
	ChannelValue         decimal.Decimal `json:"channelValue"`
	RateMissing          bool            `json:"rateMissing,omitempty"`
	RateOverlap          bool            `json:"rateOverlap,omitempty"`
}

// DateLayout is the calendar-day format used in persisted inputs.
const DateLayout = "2006-01-02"

// NewCalculationLog builds the audit record for a computed result. Only the
// multiplier values that were actually applied are recorded as applied.
func NewCalculationLog(key uuid.UUID, req CalculationRequest, res CalculationResult) CalculationLog {
	applied := MultipliersApplied{Platform: req.IncludePlatform}
	if req.IncludeEngagement {
		applied.Engagement = req.EngagementLevel
	}
	if req.IncludeSentiment {
		applied.Sentiment = req.Sentiment
	}

	channels := make([]ChannelInput, len(req.Channels))
	copy(channels, req.Channels)

	perChannel := make([]LogChannelResult, 0, len(res.Breakdown))
	for _, b := range res.Breakdown {
		perChannel = append(perChannel, LogChannelResult{
			ChannelID:            b.ChannelID,
			RateID:               b.RateID,
			ResolvedCPM:          b.ResolvedCPM,
			BaseValue:            b.BaseValue,
			PlatformMultiplier:   b.PlatformMultiplier,
			EngagementMultiplier: b.EngagementMultiplier,
			SentimentMultiplier:  b.SentimentMultiplier,
			ChannelValue:         b.ChannelValue,
			RateMissing:          b.RateMissing,
			RateOverlap:          b.RateOverlap,
		})
	}

	return CalculationLog{
		IdempotencyKey:  key,
		ActorID:         req.Attribution.ActorID,
		CampaignID:      req.Attribution.CampaignID,
		BrandID:         req.Attribution.BrandID,
		CalculationType: CalculationTypeAVE,
		Inputs: LogInputs{
			Channels:           channels,
			MultipliersApplied: applied,
			AsOfDate:           Day(req.AsOfDate).Format(DateLayout),
		},
		Results: LogResults{
			PerChannel: perChannel,
			FinalValue: res.FinalValue,
			Currency:   res.Currency,
		},
	}
}

// SameRequest reports whether req would produce this log's inputs and
// attribution. It is used to tell a replayed idempotency key from a reused
// one.
func (l CalculationLog) SameRequest(req CalculationRequest) bool {
	other := NewCalculationLog(l.IdempotencyKey, req, CalculationResult{})
	return l.ActorID == other.ActorID &&
		equalPtr(l.CampaignID, other.CampaignID) &&
		equalPtr(l.BrandID, other.BrandID) &&
		l.Inputs.AsOfDate == other.Inputs.AsOfDate &&
		slices.Equal(l.Inputs.Channels, other.Inputs.Channels) &&
		l.Inputs.MultipliersApplied.Platform == other.Inputs.MultipliersApplied.Platform &&
		equalPtr(l.Inputs.MultipliersApplied.Engagement, other.Inputs.MultipliersApplied.Engagement) &&
		equalPtr(l.Inputs.MultipliersApplied.Sentiment, other.Inputs.MultipliersApplied.Sentiment)
}

// Result rebuilds the calculation result the log was written from.
func (l CalculationLog) Result() CalculationResult {
	impressions := make(map[int64]int64, len(l.Inputs.Channels))
	for _, ch := range l.Inputs.Channels {
		impressions[ch.ChannelID] = ch.Impressions
	}
	breakdown := make([]ChannelBreakdown, 0, len(l.Results.PerChannel))
	for _, c := range l.Results.PerChannel {
		breakdown = append(breakdown, ChannelBreakdown{
			ChannelID:            c.ChannelID,
			Impressions:          impressions[c.ChannelID],
			RateID:               c.RateID,
			ResolvedCPM:          c.ResolvedCPM,
			BaseValue:            c.BaseValue,
			PlatformMultiplier:   c.PlatformMultiplier,
			EngagementMultiplier: c.EngagementMultiplier,
			SentimentMultiplier:  c.SentimentMultiplier,
			ChannelValue:         c.ChannelValue,
			RateMissing:          c.RateMissing,
			RateOverlap:          c.RateOverlap,
		})
	}
	return CalculationResult{Breakdown: breakdown, FinalValue: l.Results.FinalValue, Currency: l.Results.Currency}
}

// Equal compares two results by value. Decimals are compared numerically,
// so a value read back from storage equals the one that was written.
func (r LogResults) Equal(o LogResults) bool {
	if r.Currency != o.Currency || !r.FinalValue.Equal(o.FinalValue) || len(r.PerChannel) != len(o.PerChannel) {
		return false
	}
	for i, a := range r.PerChannel {
		b := o.PerChannel[i]
		if a.ChannelID != b.ChannelID || !equalPtr(a.RateID, b.RateID) ||
			a.RateMissing != b.RateMissing || a.RateOverlap != b.RateOverlap ||
			!a.ResolvedCPM.Equal(b.ResolvedCPM) ||
			!a.BaseValue.Equal(b.BaseValue) ||
			!a.PlatformMultiplier.Equal(b.PlatformMultiplier) ||
			!a.EngagementMultiplier.Equal(b.EngagementMultiplier) ||
			!a.SentimentMultiplier.Equal(b.SentimentMultiplier) ||
			!a.ChannelValue.Equal(b.ChannelValue) {
			return false
		}
	}
	return true
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// LogFilter selects calculation logs for reporting. Nil fields match all.
type LogFilter struct {
	ActorID    *int64
	BrandID    *int64
	CampaignID *int64
	Limit      int
	Offset     int
}
