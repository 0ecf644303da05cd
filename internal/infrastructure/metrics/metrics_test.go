package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveLookup("units", "ok", time.Second)
		m.IncrementCacheHit("units")
		m.IncrementCacheMiss("units")
		m.IncrementStale("units")
		m.IncrementSubmission("accepted")
		m.IncrementTransition("accept_nome")
	})
}

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveLookup("availability", "remote_error", 20*time.Millisecond)
	m.IncrementStale("units")
	m.IncrementStale("units")
	m.IncrementSubmission("rejected")
	m.IncrementTransition("reset")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.LookupOutcome.WithLabelValues("availability", "remote_error")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.StaleResponses.WithLabelValues("units")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Submissions.WithLabelValues("rejected")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StageTransitions.WithLabelValues("reset")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.LookupLatency))
}
