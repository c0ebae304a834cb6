package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"ave-engine/internal/core/domain"
)

// RateRepository implements port.RateRepository on PostgreSQL.
type RateRepository struct {
	pool     DB
	currency string
}

// NewRateRepository returns a repository whose snapshots are tagged with
// the given reporting currency.
func NewRateRepository(pool DB, currency string) *RateRepository {
	return &RateRepository{pool: pool, currency: currency}
}

// GetRateSnapshot reads the rates effective on asOf and the three
// multiplier tables inside one read-only REPEATABLE READ transaction, so
// every table is seen at the same instant regardless of concurrent edits.
func (r *RateRepository) GetRateSnapshot(ctx context.Context, asOf time.Time) (domain.RateSnapshot, error) {
	snap := domain.NewRateSnapshot(asOf, r.currency)

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return domain.RateSnapshot{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
        SELECT id, channel_id, cpm_value::text, currency, effective_from, effective_to
        FROM channel_rates
        WHERE effective_from <= $1
          AND (effective_to IS NULL OR effective_to > $1)
        ORDER BY channel_id, effective_from, id`, snap.AsOf)
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("query channel rates: %w", err)
	}
	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChannelRate, error) {
		var (
			rate domain.ChannelRate
			cpm  string
		)
		if err := row.Scan(&rate.ID, &rate.ChannelID, &cpm, &rate.Currency, &rate.EffectiveFrom, &rate.EffectiveTo); err != nil {
			return rate, err
		}
		rate.CPMValue, err = decimal.NewFromString(cpm)
		return rate, err
	})
	if err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("scan channel rates: %w", err)
	}
	for _, rate := range rates {
		snap.AddRate(rate)
	}

	if err = collectMultipliers(ctx, tx, `SELECT channel_id::text, multiplier::text FROM platform_multipliers`,
		func(key string, m decimal.Decimal) error {
			channelID, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return err
			}
			snap.Platform[channelID] = m
			return nil
		}); err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("platform multipliers: %w", err)
	}

	if err = collectMultipliers(ctx, tx, `SELECT level, multiplier::text FROM engagement_multipliers`,
		func(key string, m decimal.Decimal) error {
			level, err := domain.ParseEngagementLevel(key)
			if err != nil {
				return fmt.Errorf("%w: %w", domain.ErrDataIntegrity, err)
			}
			snap.Engagement[level] = m
			return nil
		}); err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("engagement multipliers: %w", err)
	}

	if err = collectMultipliers(ctx, tx, `SELECT sentiment, multiplier::text FROM sentiment_multipliers`,
		func(key string, m decimal.Decimal) error {
			s, err := domain.ParseSentiment(key)
			if err != nil {
				return fmt.Errorf("%w: %w", domain.ErrDataIntegrity, err)
			}
			snap.Sentiment[s] = m
			return nil
		}); err != nil {
		return domain.RateSnapshot{}, fmt.Errorf("sentiment multipliers: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return domain.RateSnapshot{}, err
	}
	snap.TakenAt = time.Now().UTC()
	return snap, nil
}

// collectMultipliers scans (key, multiplier) rows. Keys are read as text so
// one helper serves the channel-keyed and the enum-keyed tables.
func collectMultipliers(ctx context.Context, tx pgx.Tx, query string, add func(key string, m decimal.Decimal) error) error {
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return err
	}
	type kv struct{ key, value string }
	pairs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (kv, error) {
		var p kv
		err := row.Scan(&p.key, &p.value)
		return p, err
	})
	if err != nil {
		return err
	}
	for _, p := range pairs {
		m, err := decimal.NewFromString(p.value)
		if err != nil {
			return err
		}
		if err = add(p.key, m); err != nil {
			return err
		}
	}
	return nil
}
