package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modmail_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// ThreadsCreated counts new threads by urgency.
	ThreadsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modmail_threads_created_total",
		Help: "Total number of modmail threads opened",
	}, []string{"urgency"})

	// ThreadsClosed counts close operations, including repeated closes.
	ThreadsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "modmail_threads_closed_total",
		Help: "Total number of thread close operations",
	})

	// MessagesCreated counts stored messages by kind (thread or standalone).
	MessagesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modmail_messages_created_total",
		Help: "Total number of messages stored",
	}, []string{"kind"})

	// NotificationsSent counts thread notifications by notifier and outcome.
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modmail_notifications_total",
		Help: "Thread notifications by notifier and outcome",
	}, []string{"notifier", "outcome"})

	// AnalyticsCacheLookups counts analytics summary lookups by result (hit, miss, error).
	AnalyticsCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modmail_analytics_cache_lookups_total",
		Help: "Analytics summary cache lookups by result",
	}, []string{"report", "result"})

	// AnalyticsRefreshDuration records how long a full summary refresh takes.
	AnalyticsRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "modmail_analytics_refresh_duration_seconds",
		Help:    "Duration of analytics summary refresh runs",
		Buckets: prometheus.DefBuckets,
	})
)
