package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the deduplication path.
type Metrics struct {
	SlugsResolved     prometheus.Counter
	SlugRetries       prometheus.Counter
	SlugExhaustions   prometheus.Counter
	UniquenessChecks  prometheus.Counter
	DuplicatesFlagged prometheus.Counter
}

// New creates a Metrics instance with all dedupe metrics registered.
func New() *Metrics {
	return &Metrics{
		SlugsResolved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "library_slugs_resolved_total",
			Help: "Total number of slugs resolved to a unique candidate",
		}),
		SlugRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "library_slug_retries_total",
			Help: "Total number of slug disambiguation retries",
		}),
		SlugExhaustions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "library_slug_exhaustions_total",
			Help: "Total number of slug resolutions that exhausted the retry budget",
		}),
		UniquenessChecks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "library_uniqueness_checks_total",
			Help: "Total number of canonical key / slug uniqueness checks",
		}),
		DuplicatesFlagged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "library_duplicates_flagged_total",
			Help: "Total number of uniqueness checks that found an existing record",
		}),
	}
}

func (m *Metrics) IncrementSlugsResolved()     { m.SlugsResolved.Inc() }
func (m *Metrics) IncrementSlugRetries()       { m.SlugRetries.Inc() }
func (m *Metrics) IncrementSlugExhaustions()   { m.SlugExhaustions.Inc() }
func (m *Metrics) IncrementUniquenessChecks()  { m.UniquenessChecks.Inc() }
func (m *Metrics) IncrementDuplicatesFlagged() { m.DuplicatesFlagged.Inc() }
