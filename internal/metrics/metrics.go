package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympro_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gympro_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympro_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"role", "outcome"},
	)

	MembersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gympro_members_registered_total",
			Help: "Total number of members registered",
		},
	)

	PlanExtensionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gympro_plan_extensions_total",
			Help: "Total number of membership plan extensions",
		},
	)

	RevenueRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympro_revenue_recorded_total",
			Help: "Total revenue recorded in the ledger, by category",
		},
		[]string{"category"},
	)

	GymsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gympro_gyms",
			Help: "Number of gym tenants by status",
		},
		[]string{"status"},
	)

	RemindersQueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gympro_reminders_queued_total",
			Help: "Total number of expiry reminders queued",
		},
	)

	RemindersSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gympro_reminders_sent_total",
			Help: "Total number of expiry reminders processed",
		},
		[]string{"status"},
	)

	ReminderQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gympro_reminder_queue_length",
			Help: "Current length of the reminder queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordLogin(role, outcome string) {
	LoginsTotal.WithLabelValues(role, outcome).Inc()
}

func RecordRevenue(category string, amount float64) {
	RevenueRecorded.WithLabelValues(category).Add(amount)
}

func RecordReminder(status string) {
	RemindersSentTotal.WithLabelValues(status).Inc()
}
