package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsDetected counts schedule request events detected on the origin chain
	EventsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_events_detected_total",
			Help: "Total number of schedule request events detected",
		},
		[]string{"path"}, // "stream" or "rescan"
	)

	// EventsSkipped counts events skipped by the dedup set
	EventsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_events_skipped_total",
			Help: "Total number of events skipped as already seen",
		},
		[]string{"path"},
	)

	// SubmissionsTotal counts ledger submissions by outcome
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_submissions_total",
			Help: "Total number of ledger scheduling submissions",
		},
		[]string{"status"}, // "completed", "transient", "permanent"
	)

	// SubmissionRetries counts transient-failure retries
	SubmissionRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_submission_retries_total",
			Help: "Total number of submission retries after transient failures",
		},
	)

	// SubmissionDuration tracks submission processing time
	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relay_submission_duration_seconds",
			Help:    "Submission processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// LastProcessedBlock tracks the last origin block the relay has processed
	LastProcessedBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_last_processed_block",
			Help: "Last processed origin chain block number",
		},
	)

	// InFlightSubmissions tracks submissions currently held by the worker pool
	InFlightSubmissions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_inflight_submissions",
			Help: "Number of submissions currently in flight",
		},
	)

	// PaymentsScheduled counts payments created on the destination ledger
	PaymentsScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_payments_scheduled_total",
			Help: "Total number of scheduled payments created",
		},
	)

	// PaymentsExecuted counts payments executed on the destination ledger
	PaymentsExecuted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_payments_executed_total",
			Help: "Total number of scheduled payments executed",
		},
	)

	// ErrorsTotal counts errors by component and type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
