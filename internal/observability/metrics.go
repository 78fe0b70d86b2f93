package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream names used as metric labels.
const (
	UpstreamSuggestion = "suggestion"
	UpstreamDiagram    = "diagram"
)

// Request outcomes used as metric labels.
const (
	OutcomeSuccess      = "success"
	OutcomeClientError  = "client_error"
	OutcomeServerError  = "server_error"
	OutcomeRateLimited  = "rate_limited"
	OutcomeUpstreamFail = "error"
)

var (
	registry = prometheus.NewRegistry()

	requestsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "posesug_requests_total",
			Help: "Total number of pose suggestion requests by route and outcome.",
		},
		[]string{"route", "outcome"},
	)

	requestDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "posesug_request_duration_seconds",
			Help:    "End-to-end duration of pose suggestion requests.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10), // 0.25s .. 128s
		},
		[]string{"route"},
	)

	upstreamDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "posesug_upstream_duration_seconds",
			Help:    "Duration of calls to the remote model APIs.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
		[]string{"upstream", "outcome"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Registry returns the registry holding the service metrics.
func Registry() *prometheus.Registry {
	return registry
}

// MetricsHandler serves the registry in the Prometheus exposition format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// ObserveRequest counts a finished request and records its duration.
func ObserveRequest(route, outcome string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(route, outcome).Inc()
	requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveUpstream records the duration of a remote model call started at start.
func ObserveUpstream(upstream string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeUpstreamFail
	}
	upstreamDuration.WithLabelValues(upstream, outcome).Observe(time.Since(start).Seconds())
}
