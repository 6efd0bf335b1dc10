package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AdvisoryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisory_requests_total",
			Help: "Total number of advisory requests by outcome",
		},
		[]string{"outcome"}, // generated, fallback, greeting, thanks
	)

	AdvisoryFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisory_fallbacks_total",
			Help: "Total number of deterministic fallback advisories by reason",
		},
		[]string{"reason"},
	)

	AdvisoryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "advisory_request_duration_seconds",
			Help: "Duration of advisory pipeline runs in seconds",
		},
		[]string{"outcome"},
	)

	GenAICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genai_calls_total",
			Help: "Total number of generation service calls",
		},
		[]string{"operation", "status"}, // operation: classify|generate, status: ok|error
	)

	EmotionClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_classifications_total",
			Help: "Total number of emotion classifications by resulting label",
		},
		[]string{"emotion"},
	)
)
