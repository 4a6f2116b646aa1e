package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	GatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_gateway_requests_total",
			Help: "Outbound backend calls by service and outcome",
		},
		[]string{"service", "outcome"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_gateway_request_duration_seconds",
			Help:    "Latency of outbound backend calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	PollAttemptsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_poll_attempts_total",
			Help: "Payment status poll ticks",
		},
	)

	PollTickFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_poll_tick_failures_total",
			Help: "Poll ticks skipped because a fetch failed",
		},
	)

	PollOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_poll_outcomes_total",
			Help: "Final disposition of each polling run",
		},
		[]string{"outcome"},
	)

	BrokerMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_broker_messages_total",
			Help: "Messages observed on the backend topics",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			GatewayRequestsTotal,
			GatewayRequestDuration,
			PollAttemptsTotal,
			PollTickFailuresTotal,
			PollOutcomesTotal,
			BrokerMessagesTotal,
		)
	})
}
