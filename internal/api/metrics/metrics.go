// Package metrics defines and registers all custom Prometheus metrics for
// the travel planner API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at import
// time; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travelplanner"

// ── Budget metrics ────────────────────────────────────────────────────────────

// BudgetsEstimatedTotal counts successful budget estimates.
// Label:
//   - tier: the requested service tier (e.g. "Mid-Range")
var BudgetsEstimatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "budgets_estimated_total",
		Help:      "Total number of budget estimates successfully computed.",
	},
	[]string{"tier"},
)

// DistanceCacheTotal counts route-distance cache lookups.
// Label:
//   - result: "hit" (cached distance reused) or "miss" (gateway called)
var DistanceCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "distance_cache_total",
		Help:      "Total number of distance cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Gateway metrics ───────────────────────────────────────────────────────────

// GatewayRequestsTotal counts calls to the external maps service.
// Labels:
//   - api: "distance_matrix" or "places"
//   - status: "ok" or "error"
var GatewayRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of outbound maps gateway requests, by API and outcome.",
	},
	[]string{"api", "status"},
)

// GatewayRequestDuration measures outbound gateway call latency.
// Label:
//   - api: "distance_matrix" or "places"
var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of outbound maps gateway requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"api"},
)

// ── Travel metrics ────────────────────────────────────────────────────────────

// TravelsSavedTotal counts persisted travel records.
var TravelsSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "travels_saved_total",
		Help:      "Total number of travel records saved.",
	},
)
