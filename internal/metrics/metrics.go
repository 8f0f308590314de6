package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP request metrics, recorded by middleware.MetricsMiddleware
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunchbox_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lunchbox_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Business counters, incremented by the domain services
var (
	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunchbox_payments_total",
			Help: "Invoice payments by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	SkipTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lunchbox_skip_toggles_total",
			Help: "Skip-day toggles by resulting state (skipped/restored)",
		},
		[]string{"state"},
	)

	DeliveriesMarkedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lunchbox_deliveries_marked_total",
			Help: "Delivery stops marked delivered",
		},
	)
)

// Host metrics, populated by services.MetricsCollector
var (
	HostCPUPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lunchbox_host_cpu_percent",
			Help: "Host CPU utilisation percent",
		},
	)

	HostMemoryPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lunchbox_host_memory_percent",
			Help: "Host memory utilisation percent",
		},
	)

	HostMemoryUsedBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lunchbox_host_memory_used_bytes",
			Help: "Host memory used in bytes",
		},
	)
)
