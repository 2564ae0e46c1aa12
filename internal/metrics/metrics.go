// Package metrics exposes prometheus collectors for the review api client.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "review_tui"

var ErrServe = errors.New("failed to serve metrics")

// Collector tracks api requests made by the dashboard. A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	stale    *prometheus.CounterVec
}

func New() *Collector {
	collector := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Review api requests by endpoint and response status.",
		}, []string{"endpoint", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Review api request latency by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_total",
			Help:      "Responses dropped because a newer request was issued for the same panel.",
		}, []string{"panel"}),
	}

	collector.registry.MustRegister(collector.requests, collector.latency, collector.stale)

	return collector
}

// ObserveRequest records a completed request. A status of 0 means the transport failed before
// any response was received.
func (c *Collector) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}

	statusLabel := "error"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}

	c.requests.WithLabelValues(endpoint, statusLabel).Inc()
	c.latency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (c *Collector) ObserveStale(panel string) {
	if c == nil {
		return
	}

	c.stale.WithLabelValues(panel).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on the address until the context is cancelled.
func (c *Collector) Serve(ctx context.Context, address string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown metrics listener", slog.String("error", err.Error()))
		}
	}()

	slog.Info("Starting metrics listener", slog.String("address", address))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(err, ErrServe)
	}

	return nil
}
