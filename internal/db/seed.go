package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ave-engine/internal/core/domain"
)

type seedChannel struct {
	name     string
	cpm      string
	platform string
}

var seedChannels = []seedChannel{
	{name: "Instagram", cpm: "45000", platform: "1.50"},
	{name: "TikTok", cpm: "38000", platform: "1.40"},
	{name: "YouTube", cpm: "60000", platform: "1.20"},
	{name: "Facebook", cpm: "30000", platform: "1.00"},
	{name: "X", cpm: "25000", platform: "0.90"},
	{name: "Online News", cpm: "20000", platform: "1.10"},
}

var seedEngagement = map[domain.EngagementLevel]string{
	domain.EngagementLow:      "0.80",
	domain.EngagementModerate: "1.00",
	domain.EngagementHigh:     "2.50",
	domain.EngagementViral:    "4.00",
}

var seedSentiment = map[domain.Sentiment]string{
	domain.SentimentPositive: "1.20",
	domain.SentimentNeutral:  "1.00",
	domain.SentimentNegative: "0.50",
}

// Seed inserts demo reference rates: every channel gets a closed rate for
// last year and an open-ended rate from the start of this year, plus the
// complete engagement and sentiment tables. Existing rows are kept.
func Seed(ctx context.Context, db *pgxpool.Pool, currency string) error {
	thisYear := time.Date(time.Now().UTC().Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	lastYear := thisYear.AddDate(-1, 0, 0)

	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for _, ch := range seedChannels {
			var id int64
			err := tx.QueryRow(ctx, `INSERT INTO channels (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id`, ch.name).Scan(&id)
			if err != nil {
				return fmt.Errorf("seed channel %s: %w", ch.name, err)
			}

			var existing int
			if err = tx.QueryRow(ctx, `SELECT count(*) FROM channel_rates WHERE channel_id = $1`, id).Scan(&existing); err != nil {
				return err
			}
			if existing == 0 {
				_, err = tx.Exec(ctx, `INSERT INTO channel_rates (channel_id, cpm_value, currency, effective_from, effective_to)
VALUES ($1, ($2::numeric) * 0.9, $3, $4, $5), ($1, $2::numeric, $3, $5, NULL)`,
					id, ch.cpm, currency, lastYear, thisYear)
				if err != nil {
					return fmt.Errorf("seed rates %s: %w", ch.name, err)
				}
			}

			_, err = tx.Exec(ctx, `INSERT INTO platform_multipliers (channel_id, multiplier)
VALUES ($1, $2::numeric) ON CONFLICT DO NOTHING`, id, ch.platform)
			if err != nil {
				return err
			}
		}

		for level, m := range seedEngagement {
			_, err := tx.Exec(ctx, `INSERT INTO engagement_multipliers (level, multiplier)
VALUES ($1, $2::numeric) ON CONFLICT DO NOTHING`, string(level), m)
			if err != nil {
				return err
			}
		}
		for s, m := range seedSentiment {
			_, err := tx.Exec(ctx, `INSERT INTO sentiment_multipliers (sentiment, multiplier)
VALUES ($1, $2::numeric) ON CONFLICT DO NOTHING`, string(s), m)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
