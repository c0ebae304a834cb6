package valuation

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ave-engine/internal/core/domain"
)

var asOf = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func ptr[T any](v T) *T { return &v }

func testSnapshot() domain.RateSnapshot {
	s := domain.NewRateSnapshot(asOf, "IDR")
	s.AddRate(domain.ChannelRate{ID: 1, ChannelID: 10, CPMValue: dec("45000"), Currency: "IDR", EffectiveFrom: day(2025, 1, 1)})
	s.AddRate(domain.ChannelRate{ID: 2, ChannelID: 20, CPMValue: dec("20000"), Currency: "IDR", EffectiveFrom: day(2024, 1, 1), EffectiveTo: ptr(day(2025, 1, 1))})
	s.AddRate(domain.ChannelRate{ID: 3, ChannelID: 20, CPMValue: dec("25000"), Currency: "IDR", EffectiveFrom: day(2025, 1, 1)})
	s.Platform[10] = dec("1.50")
	s.Platform[20] = dec("0.80")
	s.Engagement[domain.EngagementLow] = dec("0.8")
	s.Engagement[domain.EngagementModerate] = dec("1")
	s.Engagement[domain.EngagementHigh] = dec("2.5")
	s.Engagement[domain.EngagementViral] = dec("4")
	s.Sentiment[domain.SentimentPositive] = dec("1.2")
	s.Sentiment[domain.SentimentNeutral] = dec("1")
	s.Sentiment[domain.SentimentNegative] = dec("0.5")
	return s
}

func baseRequest(channels ...domain.ChannelInput) domain.CalculationRequest {
	return domain.CalculationRequest{
		Channels:    channels,
		AsOfDate:    asOf,
		Attribution: domain.Attribution{ActorID: 7},
	}
}

func TestComputeBaseValueOnly(t *testing.T) {
	res, err := Compute(baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 100000}), testSnapshot())
	require.NoError(t, err)
	require.Len(t, res.Breakdown, 1)

	b := res.Breakdown[0]
	assert.True(t, b.BaseValue.Equal(dec("4500000")), "base value %s", b.BaseValue)
	assert.True(t, b.ChannelValue.Equal(dec("4500000")), "channel value %s", b.ChannelValue)
	assert.True(t, res.FinalValue.Equal(dec("4500000")))
	assert.Equal(t, "IDR", res.Currency)
	assert.False(t, b.RateMissing)
	require.NotNil(t, b.RateID)
	assert.EqualValues(t, 1, *b.RateID)
}

func TestComputeEngagementMultiplier(t *testing.T) {
	req := baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 100000})
	req.IncludeEngagement = true
	req.EngagementLevel = ptr(domain.EngagementHigh)

	res, err := Compute(req, testSnapshot())
	require.NoError(t, err)
	assert.True(t, res.Breakdown[0].EngagementMultiplier.Equal(dec("2.5")))
	assert.True(t, res.FinalValue.Equal(dec("11250000")), "final value %s", res.FinalValue)
}

func TestComputeMissingRateDegradesPerChannel(t *testing.T) {
	snap := testSnapshot()
	snap.AddRate(domain.ChannelRate{ID: 4, ChannelID: 30, CPMValue: dec("10000"), Currency: "IDR", EffectiveFrom: day(2025, 1, 1)})
	req := baseRequest(
		domain.ChannelInput{ChannelID: 30, Impressions: 100000},
		domain.ChannelInput{ChannelID: 99, Impressions: 50000},
	)

	res, err := Compute(req, snap)
	require.NoError(t, err)
	require.Len(t, res.Breakdown, 2)

	assert.True(t, res.Breakdown[0].ChannelValue.Equal(dec("1000000")))
	missing := res.Breakdown[1]
	assert.True(t, missing.RateMissing)
	assert.Nil(t, missing.RateID)
	assert.True(t, missing.ResolvedCPM.IsZero())
	assert.True(t, missing.ChannelValue.IsZero())
	assert.True(t, res.FinalValue.Equal(dec("1000000")))

	warnings := res.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(99), warnings[0].ChannelID)
	assert.Equal(t, domain.WarningRateMissing, warnings[0].Code)
	assert.False(t, res.AllRatesMissing())
}

func TestComputeAllRatesMissing(t *testing.T) {
	res, err := Compute(baseRequest(domain.ChannelInput{ChannelID: 98, Impressions: 1}, domain.ChannelInput{ChannelID: 99, Impressions: 2}), testSnapshot())
	require.NoError(t, err)
	assert.True(t, res.FinalValue.IsZero())
	assert.True(t, res.AllRatesMissing())
}

func TestComputeRejectsInconsistentSentiment(t *testing.T) {
	req := baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 1})
	req.IncludeSentiment = true

	_, err := Compute(req, domain.RateSnapshot{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestComputeMissingMultiplierRowIsDataIntegrityError(t *testing.T) {
	snap := testSnapshot()
	delete(snap.Sentiment, domain.SentimentNegative)
	req := baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 1000})
	req.IncludeSentiment = true
	req.Sentiment = ptr(domain.SentimentNegative)

	_, err := Compute(req, snap)
	require.ErrorIs(t, err, domain.ErrDataIntegrity)

	// the same gap is irrelevant when sentiment is not requested
	req.IncludeSentiment = false
	req.Sentiment = nil
	_, err = Compute(req, snap)
	require.NoError(t, err)
}

func TestComputeMissingEngagementRowIsDataIntegrityError(t *testing.T) {
	snap := testSnapshot()
	delete(snap.Engagement, domain.EngagementViral)
	req := baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 1000})
	req.IncludeEngagement = true
	req.EngagementLevel = ptr(domain.EngagementViral)

	_, err := Compute(req, snap)
	require.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestComputeCurrencyMismatchIsDataIntegrityError(t *testing.T) {
	snap := testSnapshot()
	snap.Rates[10][0].Currency = "USD"

	_, err := Compute(baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 1000}), snap)
	require.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestComputePlatformToggleIsolation(t *testing.T) {
	req := baseRequest(
		domain.ChannelInput{ChannelID: 10, Impressions: 1000},
		domain.ChannelInput{ChannelID: 20, Impressions: 1000},
	)

	res, err := Compute(req, testSnapshot())
	require.NoError(t, err)
	for _, b := range res.Breakdown {
		assert.True(t, b.PlatformMultiplier.Equal(one), "channel %d platform %s", b.ChannelID, b.PlatformMultiplier)
	}

	req.IncludePlatform = true
	res, err = Compute(req, testSnapshot())
	require.NoError(t, err)
	assert.True(t, res.Breakdown[0].PlatformMultiplier.Equal(dec("1.5")))
	assert.True(t, res.Breakdown[1].PlatformMultiplier.Equal(dec("0.8")))
}

func TestComputePlatformDefaultsToOne(t *testing.T) {
	snap := testSnapshot()
	delete(snap.Platform, 10)
	req := baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 1000})
	req.IncludePlatform = true

	res, err := Compute(req, snap)
	require.NoError(t, err)
	assert.True(t, res.Breakdown[0].PlatformMultiplier.Equal(one))
	assert.True(t, res.FinalValue.Equal(dec("45000")))
}

func TestComputeZeroImpressions(t *testing.T) {
	req := baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 0})
	req.IncludePlatform = true
	req.IncludeEngagement = true
	req.EngagementLevel = ptr(domain.EngagementViral)
	req.IncludeSentiment = true
	req.Sentiment = ptr(domain.SentimentPositive)

	res, err := Compute(req, testSnapshot())
	require.NoError(t, err)
	assert.True(t, res.Breakdown[0].ChannelValue.IsZero())
	assert.True(t, res.FinalValue.IsZero())
}

func TestComputeIdentities(t *testing.T) {
	req := baseRequest(
		domain.ChannelInput{ChannelID: 20, Impressions: 12345},
		domain.ChannelInput{ChannelID: 10, Impressions: 987654},
		domain.ChannelInput{ChannelID: 77, Impressions: 5},
	)
	req.IncludePlatform = true
	req.IncludeEngagement = true
	req.EngagementLevel = ptr(domain.EngagementLow)
	req.IncludeSentiment = true
	req.Sentiment = ptr(domain.SentimentPositive)

	res, err := Compute(req, testSnapshot())
	require.NoError(t, err)

	sum := decimal.Zero
	for i, b := range res.Breakdown {
		assert.Equal(t, req.Channels[i].ChannelID, b.ChannelID, "order must follow input")
		product := b.BaseValue.Mul(b.PlatformMultiplier).Mul(b.EngagementMultiplier).Mul(b.SentimentMultiplier)
		assert.True(t, b.ChannelValue.Equal(product), "channel %d", b.ChannelID)
		sum = sum.Add(b.ChannelValue)
	}
	assert.True(t, res.FinalValue.Equal(sum))

	// 12345 / 1000 × 25000 = 308625 exactly
	assert.True(t, res.Breakdown[0].BaseValue.Equal(dec("308625")))
}

func TestComputeIsDeterministic(t *testing.T) {
	req := baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 333}, domain.ChannelInput{ChannelID: 20, Impressions: 777})
	req.IncludePlatform = true
	snap := testSnapshot()

	first, err := Compute(req, snap)
	require.NoError(t, err)
	second, err := Compute(req, snap)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestResolveRate(t *testing.T) {
	rates := []domain.ChannelRate{
		{ID: 1, EffectiveFrom: day(2024, 1, 1), EffectiveTo: ptr(day(2025, 1, 1))},
		{ID: 2, EffectiveFrom: day(2025, 1, 1)},
	}

	t.Run("effective to is exclusive", func(t *testing.T) {
		r, overlap, ok := ResolveRate(rates, day(2025, 1, 1))
		require.True(t, ok)
		assert.False(t, overlap)
		assert.EqualValues(t, 2, r.ID)
	})
	t.Run("closed window", func(t *testing.T) {
		r, _, ok := ResolveRate(rates, day(2024, 12, 31))
		require.True(t, ok)
		assert.EqualValues(t, 1, r.ID)
	})
	t.Run("before first window", func(t *testing.T) {
		_, _, ok := ResolveRate(rates, day(2023, 6, 1))
		assert.False(t, ok)
	})
	t.Run("time of day is ignored", func(t *testing.T) {
		r, _, ok := ResolveRate(rates, time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC))
		require.True(t, ok)
		assert.EqualValues(t, 1, r.ID)
	})
	t.Run("overlap picks latest effective from", func(t *testing.T) {
		overlapping := append([]domain.ChannelRate{{ID: 9, EffectiveFrom: day(2025, 2, 1)}}, rates...)
		r, overlap, ok := ResolveRate(overlapping, day(2025, 3, 1))
		require.True(t, ok)
		assert.True(t, overlap)
		assert.EqualValues(t, 9, r.ID)
	})
	t.Run("equal effective from picks highest id", func(t *testing.T) {
		same := []domain.ChannelRate{{ID: 5, EffectiveFrom: day(2025, 1, 1)}, {ID: 4, EffectiveFrom: day(2025, 1, 1)}}
		r, overlap, ok := ResolveRate(same, day(2025, 1, 2))
		require.True(t, ok)
		assert.True(t, overlap)
		assert.EqualValues(t, 5, r.ID)
	})
}

func TestComputeFlagsOverlap(t *testing.T) {
	snap := testSnapshot()
	snap.AddRate(domain.ChannelRate{ID: 11, ChannelID: 10, CPMValue: dec("50000"), Currency: "IDR", EffectiveFrom: day(2025, 3, 1)})

	res, err := Compute(baseRequest(domain.ChannelInput{ChannelID: 10, Impressions: 1000}), snap)
	require.NoError(t, err)
	assert.True(t, res.Breakdown[0].RateOverlap)
	assert.True(t, res.Breakdown[0].ResolvedCPM.Equal(dec("50000")))
	require.Len(t, snap.Overlaps(), 1)
	assert.Equal(t, domain.WarningRateOverlap, res.Warnings()[0].Code)
}
