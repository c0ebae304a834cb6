package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ave-engine/internal/core/domain"
	"ave-engine/internal/core/port"
	"ave-engine/internal/core/valuation"
	"ave-engine/internal/metrics"
)

const defaultRecordTimeout = 10 * time.Second

// ValuationUseCase orchestrates the rate repository, the valuation engine
// and the calculation recorder to implement port.ValuationUseCase.
type ValuationUseCase struct {
	rates     port.RateRepository
	logs      port.CalculationLogRepository
	pending   port.PendingStore
	publisher port.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger

	// recordTimeout bounds an audit write once it has been issued. The
	// write is detached from the caller's context so that a cancelled
	// request cannot interrupt it halfway.
	recordTimeout time.Duration
	now           func() time.Time
}

// Option customises a ValuationUseCase.
type Option func(*ValuationUseCase)

// WithPublisher announces recorded calculations through p.
func WithPublisher(p port.EventPublisher) Option {
	return func(u *ValuationUseCase) { u.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(u *ValuationUseCase) { u.metrics = m }
}

func WithRecordTimeout(d time.Duration) Option {
	return func(u *ValuationUseCase) {
		if d > 0 {
			u.recordTimeout = d
		}
	}
}

// NewValuationUseCase creates a use case over the given repositories.
func NewValuationUseCase(
	rates port.RateRepository,
	logs port.CalculationLogRepository,
	pending port.PendingStore,
	logger *slog.Logger,
	opts ...Option,
) *ValuationUseCase {
	u := &ValuationUseCase{
		rates:         rates,
		logs:          logs,
		pending:       pending,
		logger:        logger,
		recordTimeout: defaultRecordTimeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Calculate validates req, takes one rate snapshot and computes the result
// without persisting anything.
func (u *ValuationUseCase) Calculate(ctx context.Context, req domain.CalculationRequest) (domain.CalculationResult, error) {
	lc := domain.NewLifecycle()
	start := u.now()
	if err := u.validate(lc, req, start); err != nil {
		return domain.CalculationResult{}, err
	}
	res, err := u.compute(ctx, lc, req, start)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	u.metrics.RecordCalculation(string(lc.State()), 0)
	return res, nil
}

// Evaluate computes req and records the result under key. Once the result
// is computed it is always returned, even if the audit write fails. An
// error means the computation failed, the key belongs to a different
// calculation, or the caller went away before the write was issued; in
// all of these cases nothing was persisted.
//
// A key that was already recorded for the same request returns the stored
// log and its result without recomputing. A key whose result is parked
// after a failed write records the parked result.
func (u *ValuationUseCase) Evaluate(ctx context.Context, key uuid.UUID, req domain.CalculationRequest) (port.Outcome, error) {
	lc := domain.NewLifecycle()
	start := u.now()
	if err := u.validate(lc, req, start); err != nil {
		return port.Outcome{IdempotencyKey: key, State: lc.State()}, err
	}

	if out, done, err := u.replay(ctx, lc, key, req, start); done {
		return out, err
	}

	res, err := u.compute(ctx, lc, req, start)
	if err != nil {
		return port.Outcome{IdempotencyKey: key, State: lc.State()}, err
	}

	pending := domain.PendingCalculation{
		IdempotencyKey: key,
		Request:        req,
		Result:         res,
		ComputedAt:     u.now().UTC(),
	}
	return u.park(ctx, lc, pending)
}

// replay resolves a key that was seen before. done is false when the key is
// new and the calculation has to be computed.
func (u *ValuationUseCase) replay(
	ctx context.Context,
	lc *domain.Lifecycle,
	key uuid.UUID,
	req domain.CalculationRequest,
	start time.Time,
) (out port.Outcome, done bool, err error) {
	out = port.Outcome{IdempotencyKey: key}

	existing, err := u.logs.GetByIdempotencyKey(ctx, key)
	switch {
	case err == nil:
		if !existing.SameRequest(req) {
			u.reject(lc, start)
			out.State = lc.State()
			return out, true, u.conflict(key)
		}
		u.logger.Info("calculation replayed",
			slog.String("id", existing.ID.String()),
			slog.String("idempotency_key", key.String()))
		out.State = domain.StateRecorded
		out.Result = existing.Result()
		out.Log = &existing
		return out, true, nil
	case !errors.Is(err, domain.ErrLogNotFound):
		u.reject(lc, start)
		out.State = lc.State()
		return out, true, fmt.Errorf("%w: look up idempotency key: %w", domain.ErrPersistence, err)
	}

	p, err := u.pending.Load(ctx, key)
	switch {
	case err == nil:
		if !domain.NewCalculationLog(key, p.Request, p.Result).SameRequest(req) {
			u.reject(lc, start)
			out.State = lc.State()
			return out, true, u.conflict(key)
		}
		if err = lc.To(domain.StateComputed); err != nil {
			return out, true, err
		}
		u.logger.Info("recording parked calculation", slog.String("idempotency_key", key.String()))
		out, err = u.park(ctx, lc, p)
		return out, true, err
	case !errors.Is(err, domain.ErrPendingNotFound):
		u.logger.Warn("load pending calculation", slog.String("idempotency_key", key.String()), slog.Any("error", err))
	}
	return out, false, nil
}

// park keeps a computed result retrievable and records it.
func (u *ValuationUseCase) park(ctx context.Context, lc *domain.Lifecycle, p domain.PendingCalculation) (port.Outcome, error) {
	out := port.Outcome{IdempotencyKey: p.IdempotencyKey, State: lc.State(), Result: p.Result}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	if err := u.pending.Save(ctx, p); err != nil {
		// Without the parked result a failed write cannot be retried on its
		// own, but the write itself may still succeed.
		u.logger.Warn("park pending calculation", slog.String("idempotency_key", p.IdempotencyKey.String()), slog.Any("error", err))
	}

	entry, err := u.record(ctx, lc, p.IdempotencyKey, p.Request, p.Result)
	out.State = lc.State()
	switch {
	case errors.Is(err, domain.ErrIdempotencyConflict):
		return out, err
	case err != nil:
		out.RecordErr = err
		return out, nil
	}
	out.Log = &entry
	return out, nil
}

func (u *ValuationUseCase) conflict(key uuid.UUID) error {
	u.logger.Warn("idempotency key reused for a different calculation", slog.String("idempotency_key", key.String()))
	return fmt.Errorf("%w: %s", domain.ErrIdempotencyConflict, key)
}

// RetryRecord writes the parked result of key. Keys that were already
// recorded return the stored log without writing again.
func (u *ValuationUseCase) RetryRecord(ctx context.Context, key uuid.UUID) (domain.CalculationLog, error) {
	p, err := u.pending.Load(ctx, key)
	if errors.Is(err, domain.ErrPendingNotFound) {
		existing, lerr := u.logs.GetByIdempotencyKey(ctx, key)
		switch {
		case lerr == nil:
			return existing, nil
		case errors.Is(lerr, domain.ErrLogNotFound):
			return domain.CalculationLog{}, domain.ErrPendingNotFound
		default:
			return domain.CalculationLog{}, fmt.Errorf("%w: %w", domain.ErrPersistence, lerr)
		}
	}
	if err != nil {
		return domain.CalculationLog{}, err
	}

	lc := domain.ResumeLifecycle(domain.StateRecordFailed)
	return u.record(ctx, lc, key, p.Request, p.Result)
}

func (u *ValuationUseCase) GetLog(ctx context.Context, id uuid.UUID) (domain.CalculationLog, error) {
	return u.logs.GetByID(ctx, id)
}

// ListLogs returns logs for reporting, newest first. Limit is clamped to
// [1, 200] with a default of 50.
func (u *ValuationUseCase) ListLogs(ctx context.Context, filter domain.LogFilter) ([]domain.CalculationLog, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = 50
	case filter.Limit > 200:
		filter.Limit = 200
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return u.logs.List(ctx, filter)
}

func (u *ValuationUseCase) validate(lc *domain.Lifecycle, req domain.CalculationRequest, start time.Time) error {
	if err := lc.To(domain.StateComputing); err != nil {
		return err
	}
	// Validation happens before any repository is touched.
	if err := valuation.Validate(req); err != nil {
		u.reject(lc, start)
		return err
	}
	return nil
}

func (u *ValuationUseCase) reject(lc *domain.Lifecycle, start time.Time) {
	_ = lc.To(domain.StateRejected)
	u.metrics.RecordCalculation(string(domain.StateRejected), u.now().Sub(start))
}

func (u *ValuationUseCase) compute(ctx context.Context, lc *domain.Lifecycle, req domain.CalculationRequest, start time.Time) (domain.CalculationResult, error) {
	fail := func(err error) (domain.CalculationResult, error) {
		u.reject(lc, start)
		return domain.CalculationResult{}, err
	}

	snap, err := u.rates.GetRateSnapshot(ctx, req.AsOfDate)
	if err != nil {
		u.logger.Error("rate snapshot", slog.Any("error", err))
		return fail(fmt.Errorf("rate snapshot: %w", err))
	}
	for _, o := range snap.Overlaps() {
		u.logger.Warn("overlapping rate windows",
			slog.Int64("channel_id", o.ChannelID),
			slog.Int64("rate_id", o.First),
			slog.Int64("other_rate_id", o.Second))
	}

	res, err := valuation.Compute(req, snap)
	if err != nil {
		if errors.Is(err, domain.ErrDataIntegrity) {
			u.logger.Error("calculation aborted", slog.Any("error", err))
		}
		return fail(err)
	}

	var missing, overlap int
	for _, w := range res.Warnings() {
		switch w.Code {
		case domain.WarningRateMissing:
			missing++
		case domain.WarningRateOverlap:
			overlap++
		}
		u.logger.Warn("channel rate warning", slog.Int64("channel_id", w.ChannelID), slog.String("code", w.Code))
	}
	u.metrics.RecordChannelWarnings(missing, overlap)

	if err = lc.To(domain.StateComputed); err != nil {
		return domain.CalculationResult{}, err
	}
	u.metrics.ObserveComputation(u.now().Sub(start))
	return res, nil
}

func (u *ValuationUseCase) record(
	ctx context.Context,
	lc *domain.Lifecycle,
	key uuid.UUID,
	req domain.CalculationRequest,
	res domain.CalculationResult,
) (domain.CalculationLog, error) {
	if err := lc.To(domain.StateRecording); err != nil {
		return domain.CalculationLog{}, err
	}

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.recordTimeout)
	defer cancel()

	entry := domain.NewCalculationLog(key, req, res)
	stored, err := u.logs.Append(wctx, entry)
	if err == nil && !(stored.SameRequest(req) && stored.Results.Equal(entry.Results)) {
		// The key was recorded concurrently for other inputs or rates; the
		// stored row is not this result and must not be reported as saved.
		_ = lc.To(domain.StateRecordFailed)
		u.logger.Error("stored calculation differs from computed result",
			slog.String("id", stored.ID.String()),
			slog.String("idempotency_key", key.String()),
			slog.String("stored_final_value", stored.Results.FinalValue.String()),
			slog.String("final_value", res.FinalValue.String()))
		return domain.CalculationLog{}, u.conflict(key)
	}
	if err != nil {
		_ = lc.To(domain.StateRecordFailed)
		u.metrics.RecordRecordFailure()
		u.metrics.RecordCalculation(string(domain.StateRecordFailed), 0)
		u.logger.Error("record calculation",
			slog.String("idempotency_key", key.String()),
			slog.Any("error", err))
		return domain.CalculationLog{}, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	_ = lc.To(domain.StateRecorded)
	u.metrics.RecordCalculation(string(domain.StateRecorded), 0)
	u.logger.Info("calculation recorded",
		slog.String("id", stored.ID.String()),
		slog.String("idempotency_key", key.String()),
		slog.Int64("actor_id", stored.ActorID),
		slog.String("final_value", stored.Results.FinalValue.String()))

	if err = u.pending.Remove(wctx, key); err != nil {
		u.logger.Warn("drop pending calculation", slog.String("idempotency_key", key.String()), slog.Any("error", err))
	}
	if u.publisher != nil {
		if err = u.publisher.PublishRecorded(wctx, stored); err != nil {
			u.logger.Warn("publish calculation recorded", slog.String("id", stored.ID.String()), slog.Any("error", err))
		}
	}
	return stored, nil
}
