package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_donation_service",
		Subsystem: "cart",
		Name:      "operations_total",
		Help:      "Total number of cart mutations.",
	}, []string{"op", "outcome"})

	orderSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_donation_service",
		Subsystem: "orders",
		Name:      "submissions_total",
		Help:      "Total number of order submissions by outcome.",
	}, []string{"outcome"})

	provisionalFields = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_donation_service",
		Subsystem: "orders",
		Name:      "provisional_fields_total",
		Help:      "Number of orders that got a locally generated id or QR code.",
	}, []string{"field"})

	illegalTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_donation_service",
		Subsystem: "lifecycle",
		Name:      "illegal_transitions_total",
		Help:      "Status changes rejected before reaching the platform.",
	}, []string{"kind"})
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
