package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	collector := New()
	collector.ObserveRequest("reviews", http.StatusOK, time.Millisecond*20)
	collector.ObserveRequest("reviews", http.StatusOK, time.Millisecond*10)
	collector.ObserveRequest("reviews", 0, time.Second)
	collector.ObserveStale("good")

	require.InDelta(t, 2, testutil.ToFloat64(collector.requests.WithLabelValues("reviews", "200")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(collector.requests.WithLabelValues("reviews", "error")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(collector.stale.WithLabelValues("good")), 0)
}

func TestNilCollector(t *testing.T) {
	var collector *Collector
	require.NotPanics(t, func() {
		collector.ObserveRequest("summary", http.StatusOK, time.Millisecond)
		collector.ObserveStale("bad")
	})
}

func TestHandler(t *testing.T) {
	collector := New()
	collector.ObserveRequest("statistics", http.StatusInternalServerError, time.Millisecond)

	recorder := httptest.NewRecorder()
	collector.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, strings.Contains(recorder.Body.String(),
		`review_tui_api_requests_total{endpoint="statistics",status="500"} 1`))
}
