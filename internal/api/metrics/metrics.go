// Package metrics defines and registers all custom Prometheus metrics for
// the moderation back-office. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// router exposes them on /metrics via echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ReviewActionsTotal counts moderation actions by action and outcome.
// Labels:
//   - action: "approve", "reject", or "delete"
//   - outcome: "applied", "invalid_transition", "forbidden",
//     "validation_error", "not_found", or "error"
var ReviewActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "review_actions_total",
		Help:      "Total number of moderation actions, labelled by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// SessionsTotal counts session lifecycle events.
// Label:
//   - event: "issued" or "revoked"
var SessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_total",
		Help:      "Total number of session lifecycle events, labelled by event.",
	},
	[]string{"event"},
)
