package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_donation_service",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Total number of events handed to the Kafka writer.",
	}, []string{"type"})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "food_donation_service",
		Subsystem: "events",
		Name:      "failed_total",
		Help:      "Total number of events that could not be delivered.",
	})
)
