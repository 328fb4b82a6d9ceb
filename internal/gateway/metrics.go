package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK      = "ok"
	outcomeServer  = "server_error"
	outcomeNetwork = "network_error"
)

var (
	platformRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_donation_service",
		Subsystem: "platform",
		Name:      "requests_total",
		Help:      "Total number of calls to the donation platform API.",
	}, []string{"op", "outcome"})

	platformRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "food_donation_service",
		Subsystem: "platform",
		Name:      "request_duration_seconds",
		Help:      "Donation platform API call latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
)

func observe(op, outcome string, start time.Time) {
	platformRequestsTotal.WithLabelValues(op, outcome).Inc()
	platformRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
