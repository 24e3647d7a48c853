// Package metrics defines and registers all custom Prometheus metrics for
// the BeautiFlow dashboard API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "beautiflow"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// FetchErrorsTotal counts requests that failed server-side.
// Label:
//   - path: the registered route path that produced the error
var FetchErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_errors_total",
		Help:      "Total number of requests that ended in a server error.",
	},
	[]string{"path"},
)

// AccessDeniedTotal counts route-guard denials. Denial is a designed
// outcome, not an error, so it gets its own counter.
// Label:
//   - role: the role claim that was denied ("" becomes "none")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of role-guard denials, by role.",
	},
	[]string{"role"},
)

// ThemesAppliedTotal counts theme activations.
// Label:
//   - theme: the activated theme id ("custom" for user palettes)
var ThemesAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "themes_applied_total",
		Help:      "Total number of theme activations, by theme.",
	},
	[]string{"theme"},
)

// TransactionsCreatedTotal counts transactions appended to client histories.
var TransactionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_created_total",
		Help:      "Total number of transactions created.",
	},
)
