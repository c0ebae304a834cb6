package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"ave-engine/internal/core/domain"
)

const logColumns = `id, idempotency_key, created_at, actor_id, campaign_id, brand_id, calculation_type, inputs, results`

// CalculationLogRepository implements port.CalculationLogRepository. The
// table is append-only; a trigger rejects UPDATE and DELETE.
type CalculationLogRepository struct {
	pool DB
}

// NewCalculationLogRepository returns a new repository instance.
func NewCalculationLogRepository(pool DB) *CalculationLogRepository {
	return &CalculationLogRepository{pool: pool}
}

// Append inserts the log unless its idempotency key is already stored, in
// which case the stored row is returned. Insert and read-back share one
// transaction.
func (r *CalculationLogRepository) Append(ctx context.Context, log domain.CalculationLog) (domain.CalculationLog, error) {
	inputs, err := json.Marshal(log.Inputs)
	if err != nil {
		return domain.CalculationLog{}, fmt.Errorf("marshal inputs: %w", err)
	}
	results, err := json.Marshal(log.Results)
	if err != nil {
		return domain.CalculationLog{}, fmt.Errorf("marshal results: %w", err)
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.CalculationLog{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        INSERT INTO calculation_logs
            (id, idempotency_key, actor_id, campaign_id, brand_id, calculation_type, inputs, results, final_value)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric)
        ON CONFLICT (idempotency_key) DO NOTHING
        RETURNING created_at`,
		log.ID, log.IdempotencyKey, log.ActorID, log.CampaignID, log.BrandID, log.CalculationType,
		inputs, results, log.Results.FinalValue.String(),
	).Scan(&log.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		// already recorded by an earlier attempt
		log, err = scanLog(tx.QueryRow(ctx, `SELECT `+logColumns+` FROM calculation_logs WHERE idempotency_key = $1`, log.IdempotencyKey))
	}
	if err != nil {
		return domain.CalculationLog{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		return domain.CalculationLog{}, err
	}
	return log, nil
}

// GetByID returns a log by id.
func (r *CalculationLogRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.CalculationLog, error) {
	log, err := scanLog(r.pool.QueryRow(ctx, `SELECT `+logColumns+` FROM calculation_logs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CalculationLog{}, domain.ErrLogNotFound
	}
	return log, err
}

// GetByIdempotencyKey returns the log written under key.
func (r *CalculationLogRepository) GetByIdempotencyKey(ctx context.Context, key uuid.UUID) (domain.CalculationLog, error) {
	log, err := scanLog(r.pool.QueryRow(ctx, `SELECT `+logColumns+` FROM calculation_logs WHERE idempotency_key = $1`, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CalculationLog{}, domain.ErrLogNotFound
	}
	return log, err
}

// List returns logs matching filter, newest first.
func (r *CalculationLogRepository) List(ctx context.Context, filter domain.LogFilter) ([]domain.CalculationLog, error) {
	query, args := listQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CalculationLog, error) {
		return scanLog(row)
	})
}

func listQuery(filter domain.LogFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(column string, v *int64) {
		if v == nil {
			return
		}
		args = append(args, *v)
		where = append(where, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("actor_id", filter.ActorID)
	add("brand_id", filter.BrandID)
	add("campaign_id", filter.CampaignID)

	query := `SELECT ` + logColumns + ` FROM calculation_logs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	return query, args
}

func scanLog(row pgx.Row) (domain.CalculationLog, error) {
	var (
		log             domain.CalculationLog
		inputs, results []byte
	)
	err := row.Scan(&log.ID, &log.IdempotencyKey, &log.CreatedAt, &log.ActorID, &log.CampaignID, &log.BrandID,
		&log.CalculationType, &inputs, &results)
	if err != nil {
		return domain.CalculationLog{}, err
	}
	if err = json.Unmarshal(inputs, &log.Inputs); err != nil {
		return domain.CalculationLog{}, fmt.Errorf("decode inputs of %s: %w", log.ID, err)
	}
	if err = json.Unmarshal(results, &log.Results); err != nil {
		return domain.CalculationLog{}, fmt.Errorf("decode results of %s: %w", log.ID, err)
	}
	return log, nil
}
