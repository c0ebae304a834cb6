package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ave-engine/internal/core/domain"
)

func TestListQuery(t *testing.T) {
	actor, campaign := int64(4), int64(9)

	query, args := listQuery(domain.LogFilter{ActorID: &actor, CampaignID: &campaign, Limit: 20, Offset: 40})
	assert.Contains(t, query, "WHERE actor_id = $1 AND campaign_id = $2")
	assert.Contains(t, query, "ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{int64(4), int64(9), 20, 40}, args)

	query, args = listQuery(domain.LogFilter{Limit: 50})
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{50, 0}, args)
}

func sampleLog(key uuid.UUID, impressions int64) domain.CalculationLog {
	value := decimal.NewFromInt(impressions).Mul(decimal.NewFromInt(45))
	req := domain.CalculationRequest{
		Channels:    []domain.ChannelInput{{ChannelID: 1, Impressions: impressions}},
		AsOfDate:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Attribution: domain.Attribution{ActorID: 7},
	}
	res := domain.CalculationResult{
		Breakdown: []domain.ChannelBreakdown{{
			ChannelID: 1, Impressions: impressions, ResolvedCPM: decimal.NewFromInt(45000),
			BaseValue: value, PlatformMultiplier: decimal.NewFromInt(1),
			EngagementMultiplier: decimal.NewFromInt(1), SentimentMultiplier: decimal.NewFromInt(1),
			ChannelValue: value,
		}},
		FinalValue: value,
		Currency:   "IDR",
	}
	return domain.NewCalculationLog(key, req, res)
}

func logRow(t *testing.T, log domain.CalculationLog) *pgxmock.Rows {
	t.Helper()
	inputs, err := json.Marshal(log.Inputs)
	require.NoError(t, err)
	results, err := json.Marshal(log.Results)
	require.NoError(t, err)
	return pgxmock.NewRows([]string{"id", "idempotency_key", "created_at", "actor_id", "campaign_id", "brand_id", "calculation_type", "inputs", "results"}).
		AddRow(log.ID, log.IdempotencyKey, log.CreatedAt, log.ActorID, log.CampaignID, log.BrandID, log.CalculationType, inputs, results)
}

func TestAppendInserts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	key := uuid.New()
	created := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery(`(?s)INSERT INTO calculation_logs.*ON CONFLICT \(idempotency_key\) DO NOTHING\s+RETURNING created_at`).
		WithArgs(pgxmock.AnyArg(), key, int64(7), pgxmock.AnyArg(), pgxmock.AnyArg(), domain.CalculationTypeAVE,
			pgxmock.AnyArg(), pgxmock.AnyArg(), "4500000").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectCommit()

	got, err := NewCalculationLogRepository(mock).Append(context.Background(), sampleLog(key, 100000))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.True(t, got.Results.FinalValue.Equal(decimal.NewFromInt(4500000)))
}

// A second write under a recorded key inserts nothing and returns the row
// written first.
func TestAppendExistingKeyReturnsFirstRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	key := uuid.New()
	first := sampleLog(key, 100000)
	first.ID = uuid.New()
	first.CreatedAt = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery(`INSERT INTO calculation_logs`).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}))
	mock.ExpectQuery(`FROM calculation_logs WHERE idempotency_key = \$1`).
		WithArgs(key).
		WillReturnRows(logRow(t, first))
	mock.ExpectCommit()

	got, err := NewCalculationLogRepository(mock).Append(context.Background(), sampleLog(key, 999000))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)
	assert.True(t, got.Results.FinalValue.Equal(decimal.NewFromInt(4500000)))
	assert.EqualValues(t, 100000, got.Inputs.Channels[0].Impressions)
}

func TestGetByIdempotencyKeyNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	key := uuid.New()
	mock.ExpectQuery(`FROM calculation_logs WHERE idempotency_key = \$1`).
		WithArgs(key).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err = NewCalculationLogRepository(mock).GetByIdempotencyKey(context.Background(), key)
	require.ErrorIs(t, err, domain.ErrLogNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
