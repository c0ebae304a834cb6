package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCalculation(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.RecordCalculation("recorded", 10*time.Millisecond)
	m.RecordCalculation("recorded", 0)
	m.RecordCalculation("rejected", 0)
	m.RecordChannelWarnings(2, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("recorded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RateMissingTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateOverlapTotal))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordCalculation("recorded", time.Second)
		m.RecordHTTPRequest("GET", "/", "200", time.Second)
		m.RecordRecordFailure()
		m.RecordChannelWarnings(1, 1)
		m.RecordSnapshotCache("hit")
	})
}
