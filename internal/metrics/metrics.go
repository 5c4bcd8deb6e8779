package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the visit and tracker pipelines. A nil
// *Metrics is valid and records nothing, so wiring stays optional in tests.
type Metrics struct {
	// Visits created by type and mode
	VisitsCreated *prometheus.CounterVec

	// Checklist update latency end to end, including progress derivation
	ChecklistUpdateLatency prometheus.Histogram

	// Sanitizer redactions by field ("title", "impact", "notes")
	SanitizerRedactions *prometheus.CounterVec

	// Review requests that fell back to the deterministic summary
	ReviewFallbacks prometheus.Counter
}

// New creates a Metrics instance with all collectors registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		VisitsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cratrack_visits_created_total",
			Help: "Total visits created by type and mode",
		}, []string{"type", "mode"}),

		ChecklistUpdateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cratrack_checklist_update_duration_seconds",
			Help:    "Duration of checklist updates including progress derivation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}),

		SanitizerRedactions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cratrack_sanitizer_redactions_total",
			Help: "Total sanitizer redaction events by field",
		}, []string{"field"}),

		ReviewFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cratrack_review_fallbacks_total",
			Help: "Total reviews served by the deterministic fallback",
		}),
	}
}

// IncrementVisitsCreated records a created visit.
func (m *Metrics) IncrementVisitsCreated(visitType, mode string) {
	if m != nil {
		m.VisitsCreated.WithLabelValues(visitType, mode).Inc()
	}
}

// ObserveChecklistUpdate records the duration of a checklist update.
func (m *Metrics) ObserveChecklistUpdate(d time.Duration) {
	if m != nil {
		m.ChecklistUpdateLatency.Observe(d.Seconds())
	}
}

// IncrementSanitizerRedactions records a redaction event on a field.
func (m *Metrics) IncrementSanitizerRedactions(field string) {
	if m != nil {
		m.SanitizerRedactions.WithLabelValues(field).Inc()
	}
}

// IncrementReviewFallbacks records a deterministic review fallback.
func (m *Metrics) IncrementReviewFallbacks() {
	if m != nil {
		m.ReviewFallbacks.Inc()
	}
}
