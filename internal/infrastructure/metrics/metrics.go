// Package metrics exposes Prometheus counters for the lifecycle engine.
// Labels carry kinds and outcomes only, never entity ids.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultApplied  = "applied"
	ResultRejected = "rejected"
	ResultNoop     = "noop"
	ResultFailed   = "failed"
)

var (
	// StatusTransitionTotal counts status change requests by kind and result.
	StatusTransitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gestion_status_transition_total",
		Help: "Status change requests, by entity kind and result (applied/rejected/noop/failed).",
	}, []string{"kind", "result"})

	// CascadeFailureTotal counts dependent rows left behind by a cascade.
	CascadeFailureTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gestion_cascade_failure_total",
		Help: "Dependent rows that failed to update during a soft-delete or restore cascade.",
	}, []string{"operation", "kind"})

	// RecycleBinActionTotal counts recycle bin actions by action and kind.
	RecycleBinActionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gestion_recycle_bin_action_total",
		Help: "Soft-delete, restore and purge actions, by entity kind.",
	}, []string{"action", "kind"})
)
