package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Checkpoint service metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Conversation turns
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "turns_total",
			Help:      "Total conversation turns handled",
		},
		[]string{"outcome"},
	)

	// Extraction calls
	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "extraction_duration_seconds",
			Help:      "Field extraction call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30},
		},
		[]string{"status"},
	)

	ExtractionFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "extraction_failures_total",
			Help:      "Total field extraction failures",
		},
	)

	// Orders
	OrdersFinalizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "orders_finalized_total",
			Help:      "Total orders persisted from completed drafts",
		},
	)

	OrderStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "order_status_changes_total",
			Help:      "Total order status transitions",
		},
		[]string{"to_status"},
	)

	// Auth requests
	AuthRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "auth_requests_total",
			Help:      "Total authentication requests",
		},
		[]string{"auth_type", "status"},
	)

	// Busy sessions rejected
	SessionBusyTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkpoint",
			Subsystem: "server",
			Name:      "session_busy_total",
			Help:      "Turns rejected because the session was already processing",
		},
	)
)
