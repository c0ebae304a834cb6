package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ave-engine/internal/core/domain"
)

// IdempotencyKeyHeader carries the client-generated key of a calculation.
const IdempotencyKeyHeader = "Idempotency-Key"

type calculationResponse struct {
	IdempotencyKey uuid.UUID                `json:"idempotencyKey"`
	State          domain.CalculationState  `json:"state"`
	Result         domain.CalculationResult `json:"result"`
	Warnings       []domain.Warning         `json:"warnings"`
	Saved          bool                     `json:"saved"`
	LogID          *uuid.UUID               `json:"logId,omitempty"`
	RecordError    string                   `json:"recordError,omitempty"`
}

type previewResponse struct {
	Result   domain.CalculationResult `json:"result"`
	Warnings []domain.Warning         `json:"warnings"`
}

func warningsOf(res domain.CalculationResult) []domain.Warning {
	w := res.Warnings()
	if w == nil {
		return []domain.Warning{}
	}
	return w
}

// handleCalculate computes and records a valuation. The computed result is
// returned with 200 even when the audit write fails; saved tells the client
// whether to offer a retry of the record step.
func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	key := uuid.New()
	if raw := r.Header.Get(IdempotencyKeyHeader); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid Idempotency-Key", http.StatusBadRequest)
			return
		}
		key = parsed
	}

	req, err := decodeCalculationRequest(r, time.Now())
	if err != nil {
		h.writeError(w, "decode calculation request", err)
		return
	}

	out, err := h.svc.Evaluate(r.Context(), key, req)
	if err != nil {
		h.writeError(w, "calculation error", err)
		return
	}

	resp := calculationResponse{
		IdempotencyKey: out.IdempotencyKey,
		State:          out.State,
		Result:         out.Result,
		Warnings:       warningsOf(out.Result),
		Saved:          out.Log != nil,
	}
	if out.Log != nil {
		resp.LogID = &out.Log.ID
	}
	if out.RecordErr != nil {
		resp.RecordError = "calculation could not be saved, retry the record step"
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handlePreview computes a valuation without recording it.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCalculationRequest(r, time.Now())
	if err != nil {
		h.writeError(w, "decode calculation request", err)
		return
	}
	res, err := h.svc.Calculate(r.Context(), req)
	if err != nil {
		h.writeError(w, "preview error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, previewResponse{Result: res, Warnings: warningsOf(res)})
}

// handleRecord retries the audit write of an earlier calculation.
func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	key, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid idempotency key", http.StatusBadRequest)
		return
	}
	log, err := h.svc.RetryRecord(r.Context(), key)
	if err != nil {
		h.writeError(w, "record retry error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, log)
}
