package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	t.Run("uses custom registry", func(t *testing.T) {
		registry := prometheus.NewRegistry()

		m := NewManager(WithRegistry(registry), WithNamespace("test"))

		require.NotNil(t, m)
		assert.Same(t, registry, m.Registry())
	})

	t.Run("ignores empty options", func(t *testing.T) {
		m := NewManager(WithNamespace(""), WithHistogramBuckets(nil), WithRegistry(nil))

		assert.Equal(t, "gitevents", m.namespace)
		assert.Equal(t, prometheus.DefBuckets, m.histogramBuckets)
		assert.NotNil(t, m.Registry())
	})
}

func TestManager_Record(t *testing.T) {
	m := NewManager()

	m.RecordRequest(OutcomeOK, 20*time.Millisecond)
	m.RecordRequest(OutcomeOK, 30*time.Millisecond)
	m.RecordRequest(OutcomeError, time.Millisecond)
	m.SetRateLimitRemaining(4999)
	m.AddEventsNormalised(3)
	m.AddFacetParses(5)
	m.RecordLocations(2, 1)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.graphqlRequests.WithLabelValues(OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.graphqlRequests.WithLabelValues(OutcomeError)))
	assert.Equal(t, float64(4999), testutil.ToFloat64(m.rateLimitRemaining))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.eventsNormalised))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.facetParses))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.locationsAccepted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.locationsRejected))
}

func TestManager_NilIsNoop(t *testing.T) {
	var m *Manager

	assert.NotPanics(t, func() {
		m.RecordRequest(OutcomeOK, time.Second)
		m.SetRateLimitRemaining(1)
		m.AddEventsNormalised(1)
		m.AddFacetParses(1)
		m.RecordLocations(1, 1)
	})
}

func TestManager_Handler(t *testing.T) {
	m := NewManager()
	m.AddEventsNormalised(7)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gitevents_events_normalised_total 7")
}
