// Package metrics provides Prometheus metrics for GitHub API traffic and
// the event and venue normalisation pipeline.
//
// A nil *Manager is valid and records nothing, so components can take an
// optional manager without guarding every call.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeRateLimited = "rate_limited"
)

// Manager owns the gitevents metrics.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// GraphQL transport
	graphqlRequests        *prometheus.CounterVec
	graphqlRequestDuration prometheus.Histogram
	rateLimitRemaining     prometheus.Gauge

	// Normalisation pipeline
	eventsNormalised  prometheus.Counter
	facetParses       prometheus.Counter
	locationsAccepted prometheus.Counter
	locationsRejected prometheus.Counter
}

// NewManager creates a metrics manager. By default metrics live on a fresh
// registry so that Go runtime collectors are not exported.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gitevents",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.graphqlRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "graphql",
		Name:      "requests_total",
		Help:      "GraphQL requests sent to GitHub, by outcome",
	}, []string{"outcome"})

	m.graphqlRequestDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "graphql",
		Name:      "request_duration_seconds",
		Help:      "GraphQL request latency",
		Buckets:   m.histogramBuckets,
	})

	m.rateLimitRemaining = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "graphql",
		Name:      "rate_limit_remaining",
		Help:      "Remaining GitHub API quota reported by the last response",
	})

	m.eventsNormalised = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "events",
		Name:      "normalised_total",
		Help:      "Events produced by the event normaliser",
	})

	m.facetParses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "events",
		Name:      "facet_parses_total",
		Help:      "Issue bodies run through the facet parser",
	})

	m.locationsAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "locations",
		Name:      "accepted_total",
		Help:      "Venue entries that passed validation",
	})

	m.locationsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "locations",
		Name:      "rejected_total",
		Help:      "Venue entries rejected by validation",
	})
}

// RecordRequest records one GraphQL round trip.
func (m *Manager) RecordRequest(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.graphqlRequests.WithLabelValues(outcome).Inc()
	m.graphqlRequestDuration.Observe(duration.Seconds())
}

// SetRateLimitRemaining records the quota reported by GitHub.
func (m *Manager) SetRateLimitRemaining(remaining int) {
	if m == nil {
		return
	}
	m.rateLimitRemaining.Set(float64(remaining))
}

// AddEventsNormalised counts produced events.
func (m *Manager) AddEventsNormalised(n int) {
	if m == nil {
		return
	}
	m.eventsNormalised.Add(float64(n))
}

// AddFacetParses counts facet parser invocations.
func (m *Manager) AddFacetParses(n int) {
	if m == nil {
		return
	}
	m.facetParses.Add(float64(n))
}

// RecordLocations counts the outcome of one validation pass.
func (m *Manager) RecordLocations(accepted, rejected int) {
	if m == nil {
		return
	}
	m.locationsAccepted.Add(float64(accepted))
	m.locationsRejected.Add(float64(rejected))
}

// Registry returns the registry metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
