package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/events/:eventId", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/events/:eventId", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/events/:eventId", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/events/:eventId", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/events/:eventId", "404")))
}

func TestCounters(t *testing.T) {
	m := New()
	m.BoundaryFallback("home-news")
	m.ContentReload(nil)
	m.ContentReload(errors.New("bad yaml"))
	m.ContentReload(errors.New("bad yaml"))
	m.SignIn()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks.WithLabelValues("home-news")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contentReloads.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.contentReloads.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.signIns))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Second)
		m.BoundaryFallback("x")
		m.ContentReload(nil)
		m.SignIn()
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.SignIn()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "academy_sign_ins_total 1"))
}
