package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("visit_test", prometheus.NewRegistry())

	m.IncReservationCreated("created")
	m.IncReservationCreated("created")
	m.IncReservationCreated("conflict")
	m.IncLookup("empty")
	m.IncCacheRequest("categories", "hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reservationsCreated.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationsCreated.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookupsTotal.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheRequests.WithLabelValues("categories", "hit")))
}

func TestMetrics_HTTPAndDB(t *testing.T) {
	m := NewWithRegistry("visit_test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("/api/v1/schedule", "GET", 200, 15*time.Millisecond)
	m.ObserveDBQuery("query", errors.New("boom"), time.Millisecond)
	m.SetDBPoolStats(5, 2, 3, 7)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/api/v1/schedule", "GET", "200")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.dbOpenConnections))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbWaitCount))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("/", "GET", 200, time.Second)
		m.ObserveDBQuery("exec", nil, time.Second)
		m.SetDBPoolStats(1, 1, 0, 0)
		m.IncReservationCreated("created")
		m.IncLookup("found")
		m.IncCacheRequest("reservations", "miss")
	})
}
