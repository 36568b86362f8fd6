package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ncpbridge_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "route"},
	)

	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "ncpbridge_http_requests_total", Help: "HTTP requests by code, method and route."},
		[]string{"code", "method", "route"},
	)

	requestsByRole = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "ncpbridge_http_requests_by_role_total", Help: "HTTP requests by caller role."},
		[]string{"role"},
	)

	responseBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ncpbridge_http_response_bytes",
			Help:    "HTTP response body size by route.",
			Buckets: prometheus.ExponentialBuckets(16, 4, 6),
		},
		[]string{"route"},
	)

	inFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ncpbridge_http_in_flight_requests",
		Help: "HTTP requests currently being served.",
	})
)

func init() {
	prometheus.MustRegister(
		requestDuration,
		requests,
		requestsByRole,
		responseBytes,
		inFlight,
	)
}

// ProvideMetrics is the /metrics handler for the default registry.
func ProvideMetrics() http.Handler { return promhttp.Handler() }
