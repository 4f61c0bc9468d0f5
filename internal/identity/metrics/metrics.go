package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for identity issuance.
type Metrics struct {
	IdentitiesIssued *prometheus.CounterVec
	IssueFailures    prometheus.Counter
}

// New creates a Metrics instance with all identity metrics registered.
func New() *Metrics {
	return &Metrics{
		IdentitiesIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "library_identities_issued_total",
			Help: "Total number of identity records issued, by event type",
		}, []string{"event_type"}),
		IssueFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "library_identity_issue_failures_total",
			Help: "Total number of identity issuances that failed to persist",
		}),
	}
}

// IncrementIssued records a successful issuance for an event type.
func (m *Metrics) IncrementIssued(eventType string) {
	m.IdentitiesIssued.WithLabelValues(eventType).Inc()
}

// IncrementFailures records a persistence failure.
func (m *Metrics) IncrementFailures() {
	m.IssueFailures.Inc()
}
