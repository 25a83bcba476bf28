package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the conversation engine.
var (
	TurnsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flywise_turns_processed_total",
		Help: "Total conversation turns processed.",
	})

	TurnFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flywise_turn_failures_total",
		Help: "Turns that ended in the generic failure reply.",
	})

	Escalations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flywise_escalations_total",
		Help: "Conversations escalated to human support after retry exhaustion.",
	})

	BookingsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flywise_bookings_issued_total",
		Help: "Bookings confirmed with a PNR.",
	})

	SessionsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flywise_sessions_swept_total",
		Help: "Expired sessions removed by the background sweep.",
	})
)
