// Package metrics defines and registers all custom Prometheus metrics for the
// report-admin API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "report_admin"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AuthDeniedTotal counts requests rejected by the session gate.
var AuthDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests rejected for missing or expired sessions.",
	},
)

// UsersCreatedTotal counts accounts created through the management API.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)

// ReportNameChecksTotal counts uniqueness checks.
// Label:
//   - result: "hit" (name taken) or "miss" (name free)
var ReportNameChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_name_checks_total",
		Help:      "Total number of report name uniqueness checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
