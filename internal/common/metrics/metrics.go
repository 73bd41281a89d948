// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DecisionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_decisions_completed_total",
			Help: "Total number of completed routing decisions",
		},
		[]string{"team", "priority"},
	)

	DecisionsFallback = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_decisions_fallback_total",
			Help: "Total number of fallback decisions by failure category",
		},
		[]string{"category"},
	)

	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_tool_calls_total",
			Help: "Total number of tool invocations by tool and outcome",
		},
		[]string{"tool", "outcome"},
	)

	DecisionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "routing_decision_duration_seconds",
			Help: "Duration of a full decision cycle in seconds",
		},
		[]string{"outcome"},
	)

	ManualReviews = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "routing_manual_reviews_total",
			Help: "Total number of decisions flagged for manual review",
		},
	)

	DecisionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "routing_decisions_active",
			Help: "Number of decision cycles currently in flight",
		},
	)
)
