// Package metrics defines and registers all custom Prometheus metrics for the
// event portal access service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init through promauto and exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "event_portal"

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDecisionsTotal counts authorization decisions made by the access middleware.
// Labels:
//   - axis: "event" or "global"
//   - outcome: "allowed" or "denied"
//   - reason: deny reason ("not_authenticated", "no_event_role", "role_insufficient"), empty when allowed
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization decisions, by axis, outcome and deny reason.",
	},
	[]string{"axis", "outcome", "reason"},
)

// AuthzErrorsTotal counts authorization checks that failed because a store was unavailable.
// Label:
//   - axis: "event", "global" or "sync"
var AuthzErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_errors_total",
		Help:      "Total number of authorization checks or user syncs that failed with a store error.",
	},
	[]string{"axis"},
)

// ── User sync metrics ─────────────────────────────────────────────────────────

// UserSyncTotal counts sync-on-access attempts.
// Label:
//   - result: "ok" or "failed"
var UserSyncTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_sync_total",
		Help:      "Total number of lazy user sync attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Role administration metrics ───────────────────────────────────────────────

// EventRoleChangesTotal counts successful event role changes.
// Labels:
//   - action: "granted", "changed" or "revoked"
var EventRoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_role_changes_total",
		Help:      "Total number of event role grants, changes and revocations.",
	},
	[]string{"action"},
)
