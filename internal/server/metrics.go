// internal/server/metrics.go
package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	MetricHTTPRequestsTotal   = "esobench_http_requests_total"
	MetricHTTPRequestDuration = "esobench_http_request_duration_seconds"
	MetricSortRequests        = "esobench_sort_requests_total"
	MetricColorLookups        = "esobench_color_lookups_total"
)

// Metrics holds the server's Prometheus collectors. All operations are
// thread-safe.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	sortRequests        *prometheus.CounterVec
	colorLookups        prometheus.Counter
}

// NewMetrics creates the collectors without registering them; call Register.
func NewMetrics() *Metrics {
	return &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricHTTPRequestsTotal,
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricHTTPRequestDuration,
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"method", "path", "status"},
		),
		sortRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSortRequests,
				Help: "Leaderboard renders by sort key and direction",
			},
			[]string{"key", "direction"},
		),
		colorLookups: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: MetricColorLookups,
				Help: "Total number of score to color lookups",
			},
		),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveHTTPRequest records one request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration float64) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": status,
	}
	m.httpRequestDuration.With(labels).Observe(duration)
	m.httpRequestsTotal.With(labels).Inc()
}

// IncSort counts a leaderboard render for the given sort key and direction.
func (m *Metrics) IncSort(key, direction string) {
	m.sortRequests.WithLabelValues(key, direction).Inc()
}

// IncColorLookup counts a color lookup.
func (m *Metrics) IncColorLookup() {
	m.colorLookups.Inc()
}

// Collectors returns all collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.sortRequests,
		m.colorLookups,
	}
}
