package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	errorResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_donation_service",
			Subsystem: "http",
			Name:      "error_responses_total",
			Help:      "Total number of error responses by status code",
		},
		[]string{"status"},
	)

	ordersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "food_donation_service",
			Subsystem: "http",
			Name:      "orders_submitted_total",
			Help:      "Total number of orders accepted through the API",
		},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_donation_service",
			Subsystem: "http",
			Name:      "logins_total",
			Help:      "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		errorResponses,
		ordersSubmitted,
		logins,
	)
}
