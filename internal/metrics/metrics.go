// Package metrics exposes Prometheus instrumentation for the HTTP API.
//
// All metrics use the "surveyd_" prefix. Registration is idempotent: the
// singleton is created once and reused by every middleware instance.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config controls the Prometheus metrics surface.
type Config struct {
	// Enabled controls whether request instrumentation and the /metrics
	// scrape endpoint are mounted.
	// Default: true (the generated sample config enables it)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// HTTPMetrics tracks Prometheus metrics for API requests.
type HTTPMetrics struct {
	// RequestsTotal counts completed requests.
	// Labels: method, route, status
	RequestsTotal *prometheus.CounterVec

	// RequestDuration tracks request processing time in seconds.
	// Labels: method, route
	RequestDuration *prometheus.HistogramVec

	// RequestsInFlight tracks the number of requests currently being served.
	RequestsInFlight prometheus.Gauge
}

var (
	httpMetricsOnce     sync.Once
	httpMetricsInstance *HTTPMetrics
)

// NewHTTPMetrics creates and registers the API request metrics.
//
// If registerer is nil, prometheus.DefaultRegisterer is used. The function is
// idempotent: repeated calls return the same instance.
func NewHTTPMetrics(registerer prometheus.Registerer) *HTTPMetrics {
	httpMetricsOnce.Do(func() {
		if registerer == nil {
			registerer = prometheus.DefaultRegisterer
		}

		httpMetricsInstance = &HTTPMetrics{
			RequestsTotal: promauto.With(registerer).NewCounterVec(
				prometheus.CounterOpts{
					Name: "surveyd_http_requests_total",
					Help: "Total HTTP requests by method, route and status code",
				},
				[]string{"method", "route", "status"},
			),
			RequestDuration: promauto.With(registerer).NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "surveyd_http_request_duration_seconds",
					Help:    "HTTP request latency by method and route",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
			RequestsInFlight: promauto.With(registerer).NewGauge(
				prometheus.GaugeOpts{
					Name: "surveyd_http_requests_in_flight",
					Help: "Number of HTTP requests currently being served",
				},
			),
		}
	})
	return httpMetricsInstance
}

// Middleware instruments every request passing through the router.
//
// The route label uses the chi route pattern (e.g. /v1/surveys/{surveyId})
// rather than the raw path, keeping label cardinality bounded.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		pattern := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			pattern = rctx.RoutePattern()
		}

		m.RequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(ww.Status())).Inc()
		m.RequestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
