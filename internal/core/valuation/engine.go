// Package valuation converts channel impressions into an advertising value
// equivalent. It is pure: every rate comes from the snapshot handed in.
package valuation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ave-engine/internal/core/domain"
)

var one = decimal.NewFromInt(1)

// Compute values every requested channel against the snapshot and returns
// the breakdown in input order together with its sum.
//
// A channel without an applicable rate contributes zero and is flagged in
// its breakdown. A requested engagement or sentiment multiplier that the
// snapshot does not hold aborts the whole calculation with
// domain.ErrDataIntegrity.
func Compute(req domain.CalculationRequest, snap domain.RateSnapshot) (domain.CalculationResult, error) {
	if err := Validate(req); err != nil {
		return domain.CalculationResult{}, err
	}

	engagement, err := engagementMultiplier(req, snap)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	sentiment, err := sentimentMultiplier(req, snap)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	asOf := domain.Day(req.AsOfDate)
	breakdowns := make([]domain.ChannelBreakdown, 0, len(req.Channels))
	for _, ch := range req.Channels {
		b := domain.ChannelBreakdown{
			ChannelID:            ch.ChannelID,
			Impressions:          ch.Impressions,
			ResolvedCPM:          decimal.Zero,
			PlatformMultiplier:   one,
			EngagementMultiplier: engagement,
			SentimentMultiplier:  sentiment,
		}

		rate, overlap, ok := ResolveRate(snap.Rates[ch.ChannelID], asOf)
		if ok {
			if snap.Currency != "" && rate.Currency != snap.Currency {
				return domain.CalculationResult{}, fmt.Errorf("%w: rate %d of channel %d is in %s, reporting currency is %s",
					domain.ErrDataIntegrity, rate.ID, ch.ChannelID, rate.Currency, snap.Currency)
			}
			id := rate.ID
			b.RateID = &id
			b.ResolvedCPM = rate.CPMValue
			b.RateOverlap = overlap
		} else {
			b.RateMissing = true
		}

		if req.IncludePlatform {
			if m, found := snap.Platform[ch.ChannelID]; found {
				b.PlatformMultiplier = m
			}
		}

		// impressions / 1000 × CPM, shifted rather than divided to stay exact.
		b.BaseValue = decimal.NewFromInt(ch.Impressions).Mul(b.ResolvedCPM).Shift(-3)
		b.ChannelValue = b.BaseValue.
			Mul(b.PlatformMultiplier).
			Mul(b.EngagementMultiplier).
			Mul(b.SentimentMultiplier)

		breakdowns = append(breakdowns, b)
	}

	res := Aggregate(breakdowns)
	res.Currency = snap.Currency
	return res, nil
}

// ResolveRate picks the rate effective on day: EffectiveFrom ≤ day and
// EffectiveTo unset or after day. When several rows qualify the latest
// EffectiveFrom wins, then the highest ID, and overlap is reported.
func ResolveRate(rates []domain.ChannelRate, day time.Time) (rate domain.ChannelRate, overlap bool, ok bool) {
	matches := 0
	for _, r := range rates {
		if !r.ActiveOn(day) {
			continue
		}
		matches++
		if !ok || newer(r, rate) {
			rate = r
			ok = true
		}
	}
	return rate, matches > 1, ok
}

func newer(a, b domain.ChannelRate) bool {
	af, bf := domain.Day(a.EffectiveFrom), domain.Day(b.EffectiveFrom)
	if !af.Equal(bf) {
		return af.After(bf)
	}
	return a.ID > b.ID
}

func engagementMultiplier(req domain.CalculationRequest, snap domain.RateSnapshot) (decimal.Decimal, error) {
	if !req.IncludeEngagement {
		return one, nil
	}
	m, ok := snap.Engagement[*req.EngagementLevel]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no engagement multiplier for level %q", domain.ErrDataIntegrity, *req.EngagementLevel)
	}
	return m, nil
}

func sentimentMultiplier(req domain.CalculationRequest, snap domain.RateSnapshot) (decimal.Decimal, error) {
	if !req.IncludeSentiment {
		return one, nil
	}
	m, ok := snap.Sentiment[*req.Sentiment]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no sentiment multiplier for %q", domain.ErrDataIntegrity, *req.Sentiment)
	}
	return m, nil
}
