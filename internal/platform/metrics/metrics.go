// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pos_ledger"

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests counts handled requests by route and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by route, method and status.",
}, []string{"route", "method", "status"})

// HTTPLatency tracks request latency by route.
var HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})

// ─── Ledger ─────────────────────────────────────────────────────────────────

// EntriesPosted counts journal entries appended to the ledger by origin.
var EntriesPosted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "entries_posted_total",
	Help:      "Total journal entries appended, by origin (Manual or Automatic).",
}, []string{"origin"})

// EventsRecorded counts business events by kind and final command state.
var EventsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "events_recorded_total",
	Help:      "Total business events processed, by kind and outcome state.",
}, []string{"kind", "state"})

// Compensations counts rollbacks of partially recorded business events.
var Compensations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "compensations_total",
	Help:      "Total business events rolled back after a partial failure.",
}, []string{"kind"})

// ManualRejections counts manual entries rejected by validation, by reason.
var ManualRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "manual_rejections_total",
	Help:      "Total manual journal entries rejected by validation.",
}, []string{"reason"})

// ─── Reporting ──────────────────────────────────────────────────────────────

// SkippedLines counts journal lines skipped during aggregation for referencing unknown accounts.
var SkippedLines = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "reporting",
	Name:      "skipped_lines_total",
	Help:      "Total journal lines skipped because their account is not in the chart.",
})

// UnbalancedSheets counts report runs whose balance sheet did not balance.
var UnbalancedSheets = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "reporting",
	Name:      "unbalanced_sheets_total",
	Help:      "Total financial summaries whose assets differ from liabilities plus equity.",
})
