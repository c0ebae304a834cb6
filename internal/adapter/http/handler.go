package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"ave-engine/internal/core/port"
	"ave-engine/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the valuation use case and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.ValuationUseCase
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	limiter  *rate.Limiter
	router   chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithMetrics instruments every request with m and serves g on /metrics.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = g
	}
}

// WithRateLimit throttles the calculation endpoints to limit requests per
// second with the given burst. A non-positive limit disables throttling.
func WithRateLimit(limit float64, burst int) Option {
	return func(h *Handler) {
		if limit <= 0 {
			h.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ValuationUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/ave", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.throttle)
			r.Post("/preview", h.handlePreview)
			r.Post("/calculations", h.handleCalculate)
			// {id} is the idempotency key on the record route.
			r.Post("/calculations/{id}/record", h.handleRecord)
		})
		r.Get("/calculations", h.handleListLogs)
		r.Get("/calculations/{id}", h.handleGetLog)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
