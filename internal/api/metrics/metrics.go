// Package metrics defines and registers all custom Prometheus metrics for
// the admin API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// load; the echoprometheus middleware exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adminapi"

// ResourceWritesTotal counts successful create and update operations.
// Labels:
//   - resource: "project", "role", "user", or "usergroup"
//   - operation: "create" or "update"
var ResourceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of successful resource writes, by resource and operation.",
	},
	[]string{"resource", "operation"},
)

// RequestsRejectedTotal counts requests that failed with a client error.
// Label:
//   - kind: "validation" (400) or "not_found" (404)
var RequestsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_rejected_total",
		Help:      "Total number of requests rejected with a client error, by error kind.",
	},
	[]string{"kind"},
)
