// Package metrics defines and registers all custom Prometheus metrics for
// the recipe platform. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at package init via promauto;
// no further wiring is required.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kusina"

// ── Store gateway metrics ─────────────────────────────────────────────────────

// StoreReadsTotal counts full-collection reads served by the store gateway.
// Labels:
//   - collection: logical collection name (e.g. "recipes")
var StoreReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_reads_total",
		Help:      "Total number of collection reads served by the store gateway.",
	},
	[]string{"collection"},
)

// StoreReadErrorsTotal counts reads that degraded to an empty collection.
// Label:
//   - reason: "storage" (backend failure) or "decode" (corrupt payload)
var StoreReadErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_read_errors_total",
		Help:      "Total number of collection reads that fell back to an empty result.",
	},
	[]string{"collection", "reason"},
)

// StoreWritesTotal counts collection writes persisted by the store gateway.
var StoreWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_writes_total",
		Help:      "Total number of collection writes persisted by the store gateway.",
	},
	[]string{"collection"},
)

// StoreWriteErrorsTotal counts collection writes reported back as failed.
var StoreWriteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_write_errors_total",
		Help:      "Total number of collection writes that failed.",
	},
	[]string{"collection"},
)

// ── Mutation metrics ──────────────────────────────────────────────────────────

// MutationsTotal counts create/update/delete operations accepted by the
// service layer, after validation.
// Labels:
//   - entity: "user", "profile", "recipe", "review", "favorite", "chef"
//   - op: "create", "update", "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of accepted mutation operations, by entity and op.",
	},
	[]string{"entity", "op"},
)

// ValidationFailuresTotal counts mutations rejected by input validation.
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of mutations rejected by input validation, by entity.",
	},
	[]string{"entity"},
)

// ── View counter metrics ──────────────────────────────────────────────────────

// ViewsRecordedTotal counts recipe view increments applied by the dispatcher.
var ViewsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_recorded_total",
		Help:      "Total number of recipe view increments applied.",
	},
)

// ViewQueueDepth tracks the number of view events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ViewQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "view_queue_depth",
		Help:      "Current number of view events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
