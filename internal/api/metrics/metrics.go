// Package metrics defines the custom Prometheus metrics for the platform
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "animationlms"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" (bad credentials), or "error"
//     (session store failure)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsReceivedTotal counts notification signups durably stored.
// Label:
//   - source: the submission source stamped on the record (e.g. "Website")
var SignupsReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_received_total",
		Help:      "Total number of notification signups stored.",
	},
	[]string{"source"},
)

// SignupErrorsTotal counts signup store operations that failed.
// Label:
//   - op: "insert_one", "insert_many", or "find"
var SignupErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_errors_total",
		Help:      "Total number of failed signup store operations, by operation.",
	},
	[]string{"op"},
)
