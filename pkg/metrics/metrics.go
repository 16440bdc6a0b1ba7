package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RsvpSubmissions counts accepted RSVP submissions by attendance (yes|no).
	RsvpSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wedding_rsvp_submissions_total",
			Help: "Total number of stored RSVP submissions",
		},
		[]string{"attendance"},
	)

	// RsvpDeletes counts admin deletions of RSVP records.
	RsvpDeletes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wedding_rsvp_deletes_total",
			Help: "Total number of RSVP records deleted by the admin",
		},
	)

	// AuthAttempts records admin login attempts by result (success|failure).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wedding_auth_attempts_total",
			Help: "Total number of admin authentication attempts",
		},
		[]string{"result"},
	)

	// ActiveSessions tracks currently valid admin tokens.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wedding_active_sessions",
			Help: "Number of valid admin session tokens",
		},
	)

	// NotificationSends counts outbound notification emails by outcome.
	NotificationSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wedding_notification_sends_total",
			Help: "Total number of notification email attempts",
		},
		[]string{"kind", "result"},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wedding_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
