package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AskRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jarvis_ask_requests_total",
			Help: "Total ask requests by final outcome",
		},
		[]string{"outcome"},
	)

	Verdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jarvis_verification_verdicts_total",
			Help: "Verification verdicts issued",
		},
		[]string{"verdict"},
	)

	AskDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jarvis_ask_duration_seconds",
			Help:    "End-to-end ask request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
	)

	SearchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jarvis_search_failures_total",
			Help: "Search gateway failures degraded to unverified answers",
		},
	)
)
