// Package metrics defines the Prometheus collectors of the shelter API.
// All collectors are registered with the default registry on package init
// and exposed through promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shelter"

// Auth rejection reasons.
const (
	ReasonMissing   = "missing"
	ReasonInvalid   = "invalid"
	ReasonExpired   = "expired"
	ReasonForbidden = "forbidden"
)

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/pets/{id}"), "unmatched" when no route matched
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthRejectionsTotal counts requests stopped by the auth and role guards.
// Label:
//   - reason: missing, invalid, expired or forbidden
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth guards.",
	},
	[]string{"reason"},
)
