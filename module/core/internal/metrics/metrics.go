package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SamplesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "safehaven_samples_received_total",
		Help: "Total number of position samples received from tourists.",
	})

	SamplesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "safehaven_samples_rejected_total",
		Help: "Total number of samples rejected by validation.",
	})

	ZoneTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "safehaven_zone_transitions_total",
		Help: "Total number of zone containment transitions, labelled by event kind.",
	}, []string{"event"})

	AlertsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "safehaven_alerts_published_total",
		Help: "Total number of safety alerts published, labelled by reason.",
	}, []string{"reason"})

	EvaluateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "safehaven_evaluate_duration_seconds",
		Help:    "Time spent evaluating one sample against the active zone snapshot.",
		Buckets: prometheus.DefBuckets,
	})
)
