// Package metrics defines and registers all custom Prometheus metrics for the
// fleet tracking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// through promauto and served by promhttp at /metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

const namespace = "fleet"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: the registered route template (e.g. "/tracking/:busId")
//   - code: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests, by method, route and status code.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures request latency by route template.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Labels:
//   - role: requested role
//   - result: "created", "rejected", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by requested role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "rate_limited", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Location metrics ──────────────────────────────────────────────────────────

// LocationReportsTotal counts location reports that were applied.
// Label:
//   - source: "api", "batch", or "simulator"
var LocationReportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_reports_total",
		Help:      "Total number of location reports applied, by source.",
	},
	[]string{"source"},
)

// LocationErrorsTotal counts location reports that failed.
// Label:
//   - reason: "bus_not_found", "invalid_location", or "update_failed"
var LocationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_errors_total",
		Help:      "Total number of location reports that failed processing.",
	},
	[]string{"reason"},
)

// QueueDepth tracks the current number of reports waiting in each worker channel.
var QueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "location_queue_depth",
		Help:      "Current number of reports pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ProcessingDuration measures how long a queued report takes from dequeue to persistence.
// Label:
//   - result: "ok" or "error"
var ProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "location_processing_duration_seconds",
		Help:      "Duration of queued location report processing.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// DedupTotal counts deduplication decisions on the batch path.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new report, processed)
var DedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// LocationErrorReason maps a report failure to a bounded label value.
func LocationErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrBusNotFound):
		return "bus_not_found"
	case errors.Is(err, domain.ErrInvalidLocation), errors.Is(err, domain.ErrValidation):
		return "invalid_location"
	default:
		return "update_failed"
	}
}
