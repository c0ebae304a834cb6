package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors of the valuation service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Valuation metrics
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	RateMissingTotal    prometheus.Counter
	RateOverlapTotal    prometheus.Counter
	RecordFailuresTotal prometheus.Counter
	SnapshotCacheTotal  *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		CalculationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ave_calculations_total",
				Help: "AVE calculations by final lifecycle state",
			},
			[]string{"state"},
		),
		CalculationDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ave_calculation_duration_seconds",
				Help:    "Time spent taking the rate snapshot and computing",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
		),
		RateMissingTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "ave_rate_missing_channels_total",
				Help: "Channels valued at zero because no CPM rate was effective",
			},
		),
		RateOverlapTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "ave_rate_overlap_channels_total",
				Help: "Channels resolved from overlapping CPM rate windows",
			},
		),
		RecordFailuresTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "ave_record_failures_total",
				Help: "Calculation logs that could not be written",
			},
		),
		SnapshotCacheTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ave_snapshot_cache_total",
				Help: "Rate snapshot cache lookups",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, route, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordCalculation(state string, duration time.Duration) {
	if m == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(state).Inc()
	if duration > 0 {
		m.CalculationDuration.Observe(duration.Seconds())
	}
}

// ObserveComputation records the time spent snapshotting and computing.
func (m *Metrics) ObserveComputation(duration time.Duration) {
	if m == nil {
		return
	}
	m.CalculationDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordChannelWarnings(missing, overlap int) {
	if m == nil {
		return
	}
	m.RateMissingTotal.Add(float64(missing))
	m.RateOverlapTotal.Add(float64(overlap))
}

func (m *Metrics) RecordRecordFailure() {
	if m == nil {
		return
	}
	m.RecordFailuresTotal.Inc()
}

// RecordSnapshotCache counts a cache lookup; result is hit, miss or error.
func (m *Metrics) RecordSnapshotCache(result string) {
	if m == nil {
		return
	}
	m.SnapshotCacheTotal.WithLabelValues(result).Inc()
}
