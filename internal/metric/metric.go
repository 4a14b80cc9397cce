package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters are registered on the default registry and exposed at /metrics.
var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventup_http_requests_total",
		Help: "Count of handled HTTP requests.",
	}, []string{"method", "status"})

	ReminderRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventup_reminder_runs_total",
		Help: "Count of reminder sweep invocations.",
	})

	RemindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventup_reminders_sent_total",
		Help: "Count of reminder notifications delivered.",
	})

	RemindersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventup_reminders_failed_total",
		Help: "Count of reminder notifications that failed to deliver.",
	})

	RemindersSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventup_reminders_skipped_total",
		Help: "Count of reminders skipped because the ledger already has them.",
	})
)
