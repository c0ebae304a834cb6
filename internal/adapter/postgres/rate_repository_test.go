package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ave-engine/internal/core/domain"
)

const rateWindowQuery = `FROM channel_rates\s+WHERE effective_from <= \$1\s+AND \(effective_to IS NULL OR effective_to > \$1\)`

var snapshotTx = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

func rateRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "channel_id", "cpm_value", "currency", "effective_from", "effective_to"})
}

func multiplierRows(key string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{key, "multiplier"})
}

func TestGetRateSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	asOf := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	end := asOf.AddDate(0, 1, 0)

	mock.ExpectBeginTx(snapshotTx)
	mock.ExpectQuery(rateWindowQuery).
		WithArgs(asOf).
		WillReturnRows(rateRows().
			AddRow(int64(2), int64(1), "45000.0000", "IDR", asOf, (*time.Time)(nil)).
			AddRow(int64(5), int64(3), "1200.5000", "IDR", asOf.AddDate(0, -1, 0), &end))
	mock.ExpectQuery(`FROM platform_multipliers`).
		WillReturnRows(multiplierRows("channel_id").AddRow("1", "1.2000"))
	mock.ExpectQuery(`FROM engagement_multipliers`).
		WillReturnRows(multiplierRows("level").AddRow("high", "2.5000").AddRow("low", "0.8000"))
	mock.ExpectQuery(`FROM sentiment_multipliers`).
		WillReturnRows(multiplierRows("sentiment").AddRow("negative", "0.5000"))
	mock.ExpectCommit()

	// the time of day is dropped before the query
	snap, err := NewRateRepository(mock, "IDR").GetRateSnapshot(context.Background(), asOf.Add(13*time.Hour))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, asOf, snap.AsOf)
	assert.Equal(t, "IDR", snap.Currency)
	require.Len(t, snap.Rates[1], 1)
	assert.True(t, snap.Rates[1][0].CPMValue.Equal(decimal.NewFromInt(45000)))
	assert.Nil(t, snap.Rates[1][0].EffectiveTo)
	require.Len(t, snap.Rates[3], 1)
	assert.Equal(t, end, *snap.Rates[3][0].EffectiveTo)
	assert.True(t, snap.Platform[1].Equal(decimal.RequireFromString("1.2")))
	assert.True(t, snap.Engagement[domain.EngagementHigh].Equal(decimal.RequireFromString("2.5")))
	assert.True(t, snap.Sentiment[domain.SentimentNegative].Equal(decimal.RequireFromString("0.5")))
}

func TestGetRateSnapshotUnknownEnum(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBeginTx(snapshotTx)
	mock.ExpectQuery(rateWindowQuery).WillReturnRows(rateRows())
	mock.ExpectQuery(`FROM platform_multipliers`).WillReturnRows(multiplierRows("channel_id"))
	mock.ExpectQuery(`FROM engagement_multipliers`).
		WillReturnRows(multiplierRows("level").AddRow("extreme", "3.0000"))
	mock.ExpectRollback()

	_, err = NewRateRepository(mock, "IDR").GetRateSnapshot(context.Background(), time.Now())
	require.ErrorIs(t, err, domain.ErrDataIntegrity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRateSnapshotBeginFails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	down := errors.New("connection refused")
	mock.ExpectBeginTx(snapshotTx).WillReturnError(down)

	_, err = NewRateRepository(mock, "IDR").GetRateSnapshot(context.Background(), time.Now())
	require.ErrorIs(t, err, down)
	require.NoError(t, mock.ExpectationsWereMet())
}
