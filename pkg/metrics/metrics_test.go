package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.Dispatch("click")
	m.IconResolved("found")
	m.Registered()
	m.Lookup(true)
	m.ObserveRender(time.Millisecond)
	assert.Nil(t, m.Registry())
	assert.NotNil(t, m.Handler())
}

func TestCounters(t *testing.T) {
	m := New()

	m.Dispatch("change")
	m.Dispatch("change")
	m.Dispatch("click")
	m.IconResolved("missing")
	m.Registered()
	m.Lookup(false)
	m.ObserveRender(2 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.dispatches.WithLabelValues("change")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues("click")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.iconResolutions.WithLabelValues("missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues("miss")))
}

func TestOptionsAndHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithNamespace("test"), WithRegistry(reg), WithConstLabels(prometheus.Labels{"app": "x"}))
	require.Same(t, reg, m.Registry())
	m.Dispatch("click")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `test_dispatches_total{app="x",event="click"} 1`)
}
