package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics names as constants for consistency.
const (
	MetricHTTPRequestsTotal   = "csscolor_http_requests_total"
	MetricHTTPRequestDuration = "csscolor_http_request_duration_seconds"
	MetricMalformedColors     = "csscolor_malformed_colors_total"
	MetricSwatchPixels        = "csscolor_swatch_pixels"
)

// Metrics contains Prometheus metrics for the HTTP API.
// All operations are thread-safe.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	malformed       *prometheus.CounterVec
	swatchPixels    prometheus.Histogram
}

// NewMetrics creates and returns a new Metrics instance with all collectors initialized.
// The metrics are not registered; call Register to register them with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricHTTPRequestsTotal,
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricHTTPRequestDuration,
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"route"},
		),
		malformed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricMalformedColors,
				Help: "Total number of rejected color inputs by cause",
			},
			[]string{"cause"},
		),
		swatchPixels: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricSwatchPixels,
				Help:    "Pixel count of rendered swatch images",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8), // 1 Ki to 16 Mi pixels
			},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, status string, seconds float64) {
	m.requestsTotal.WithLabelValues(route, status).Inc()
	m.requestDuration.WithLabelValues(route).Observe(seconds)
}

// IncMalformed counts a rejected color input.
func (m *Metrics) IncMalformed(cause string) {
	m.malformed.WithLabelValues(cause).Inc()
}

// ObserveSwatch records the size of a rendered swatch.
func (m *Metrics) ObserveSwatch(pixels int) {
	m.swatchPixels.Observe(float64(pixels))
}

// Collectors returns all Prometheus collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.requestsTotal,
		m.requestDuration,
		m.malformed,
		m.swatchPixels,
	}
}
