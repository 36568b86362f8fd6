package ncp

import "github.com/prometheus/client_golang/prometheus"

var (
	propertyLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "ncp_property_lookups_total", Help: "property dispatch lookups by verb and result"},
		[]string{"verb", "result"},
	)

	framesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "ncp_frames_total", Help: "frames processed by command and reported status"},
		[]string{"command", "status"},
	)

	handlerTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ncp_handler_seconds",
			Help:    "property handler latency.",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"verb"},
	)

	tableEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "ncp_dispatch_table_entries", Help: "entries per verb table"},
		[]string{"verb"},
	)
)

func init() {
	prometheus.MustRegister(
		propertyLookups,
		framesProcessed,
		handlerTime,
		tableEntries,
	)
}
