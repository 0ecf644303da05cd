package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the scheduling form engine.
//
// Every method is safe on a nil receiver, so components can run without metrics.
type Metrics struct {
	// Remote lookup latencies by lookup (existing_booking, units, availability)
	LookupLatency *prometheus.HistogramVec

	// Remote lookup outcomes by lookup and result
	LookupOutcome *prometheus.CounterVec

	// Lookup cache hits and misses by lookup
	CacheResult *prometheus.CounterVec

	// Lookup responses discarded because the session moved on
	StaleResponses *prometheus.CounterVec

	// Submission outcomes (accepted, invalid, rejected, failed)
	Submissions *prometheus.CounterVec

	// Stage transitions by event
	StageTransitions *prometheus.CounterVec
}

// New registers the form engine metrics on reg. A nil reg uses the default
// Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		LookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cras_form_lookup_duration_seconds",
			Help:    "Duration of scheduling API lookups by lookup",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"lookup"}),

		LookupOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cras_form_lookup_outcomes_total",
			Help: "Total scheduling API lookups by lookup and result",
		}, []string{"lookup", "result"}),

		CacheResult: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cras_form_lookup_cache_total",
			Help: "Lookup cache hits and misses by lookup",
		}, []string{"lookup", "result"}), // result: "hit", "miss"

		StaleResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cras_form_stale_responses_total",
			Help: "Lookup responses discarded because a newer request superseded them",
		}, []string{"lookup"}),

		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cras_form_submissions_total",
			Help: "Booking submissions by outcome",
		}, []string{"outcome"}),

		StageTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cras_form_stage_transitions_total",
			Help: "Stage transitions by event",
		}, []string{"event"}),
	}
}

// ObserveLookup records the duration and result of a remote lookup.
func (m *Metrics) ObserveLookup(lookup, result string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(lookup).Observe(d.Seconds())
		m.LookupOutcome.WithLabelValues(lookup, result).Inc()
	}
}

func (m *Metrics) IncrementCacheHit(lookup string) {
	if m != nil {
		m.CacheResult.WithLabelValues(lookup, "hit").Inc()
	}
}

func (m *Metrics) IncrementCacheMiss(lookup string) {
	if m != nil {
		m.CacheResult.WithLabelValues(lookup, "miss").Inc()
	}
}

// IncrementStale records a discarded lookup response.
func (m *Metrics) IncrementStale(lookup string) {
	if m != nil {
		m.StaleResponses.WithLabelValues(lookup).Inc()
	}
}

func (m *Metrics) IncrementSubmission(outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementTransition(event string) {
	if m != nil {
		m.StageTransitions.WithLabelValues(event).Inc()
	}
}
