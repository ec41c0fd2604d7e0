// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Inbound HTTP
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackio_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trackio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Tracking service client
	TrackingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackio_traccar_requests_total",
			Help: "Total number of requests sent to the tracking service",
		},
		[]string{"method", "endpoint", "status"},
	)

	TrackingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trackio_traccar_request_duration_seconds",
			Help:    "Duration of tracking service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trackio_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackio_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Session synchronization
	SessionRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackio_session_refresh_total",
			Help: "Tracking session refresh attempts by outcome",
		},
		[]string{"result"},
	)

	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackio_tracking_registrations_total",
			Help: "Tracking identity registrations by outcome",
		},
		[]string{"result"},
	)

	SyncEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackio_sync_events_total",
			Help: "Sync events published for operator visibility",
		},
		[]string{"type", "result"},
	)

	SyncEventsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackio_sync_events_handled_total",
			Help: "Sync events consumed by the reconciliation worker",
		},
		[]string{"type", "result"},
	)
)

var numericSegment = regexp.MustCompile(`/\d+`)

// EndpointLabel replaces numeric path segments so label cardinality stays bounded.
func EndpointLabel(endpoint string) string {
	return numericSegment.ReplaceAllString(endpoint, "/:id")
}
