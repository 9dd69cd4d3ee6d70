// Package metrics defines the Prometheus collectors for the service:
// HTTP request instrumentation plus slicing and download counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slicer_api_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slicer_api_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slicer_api_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Slicing metrics
	SlicesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slicer_api_slices_total",
			Help: "Total number of slice executions by outcome",
		},
		[]string{"material", "quality", "status"},
	)

	SliceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slicer_api_slice_duration_seconds",
			Help:    "Slicer execution time in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	// Download metrics
	ModelDownloadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slicer_api_model_download_bytes_total",
			Help: "Total bytes downloaded for model files",
		},
	)

	// Panic recovery metrics
	PanicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slicer_api_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)
