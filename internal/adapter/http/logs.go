package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ave-engine/internal/core/domain"
)

// handleListLogs returns calculation logs, newest first. It accepts optional
// actor_id, brand_id, campaign_id, limit and offset query parameters.
// Invalid parameters result in HTTP 400.
func (h *Handler) handleListLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		filter domain.LogFilter
		err    error
	)
	for name, dst := range map[string]**int64{
		"actor_id":    &filter.ActorID,
		"brand_id":    &filter.BrandID,
		"campaign_id": &filter.CampaignID,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		id, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			http.Error(w, "invalid "+name, http.StatusBadRequest)
			return
		}
		*dst = &id
	}
	if raw := q.Get("limit"); raw != "" {
		if filter.Limit, err = strconv.Atoi(raw); err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if filter.Offset, err = strconv.Atoi(raw); err != nil || filter.Offset < 0 {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
	}

	logs, err := h.svc.ListLogs(r.Context(), filter)
	if err != nil {
		h.writeError(w, "list logs error", err)
		return
	}
	if logs == nil {
		logs = []domain.CalculationLog{}
	}
	h.writeJSON(w, http.StatusOK, logs)
}

func (h *Handler) handleGetLog(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	log, err := h.svc.GetLog(r.Context(), id)
	if err != nil {
		h.writeError(w, "get log error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, log)
}
