// Package metrics defines the Prometheus metrics for the mykare auth core.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register with the default registry at package init; expose them by
// mounting promhttp in whatever process embeds the core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mykare_auth"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok", "duplicate", "invalid", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts. Unknown-username and wrong-password
// failures share the "rejected" result so the metric leaks no more than the
// API does.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result (ok/rejected/error).",
	},
	[]string{"result"},
)

// LogoutsTotal counts logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// GuardDecisionsTotal counts route-guard evaluations.
// Label:
//   - decision: "allow", "redirect", "pending"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by outcome.",
	},
	[]string{"decision"},
)
