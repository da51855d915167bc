package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docdash", Name: "document_mutations_total", Help: "Document store mutations by operation and outcome."},
		[]string{"op", "outcome"},
	)
	FormSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docdash", Name: "form_submissions_total", Help: "Form and delete dialog submissions by stage."},
		[]string{"stage"},
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "docdash", Name: "active_sessions", Help: "Logged-in dashboard sessions."},
	)
	RateLimitDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docdash", Name: "rate_limit_decisions_total", Help: "Rate limiter decisions by result."},
		[]string{"decision"},
	)
)

// RegisterCollectors adds the domain collectors to reg.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentMutations)
	reg.MustRegister(FormSubmissions)
	reg.MustRegister(ActiveSessions)
	reg.MustRegister(RateLimitDecisions)
}
