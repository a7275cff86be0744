package llm

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for inferenceRequestsTotal.
const (
	outcomeSuccess        = "success"
	outcomeUpstreamError  = "upstream_error"
	outcomeTransportError = "transport_error"
	outcomeDecodeError    = "decode_error"
)

var (
	inferenceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ragagent",
			Subsystem: "inference",
			Name:      "requests_total",
			Help:      "Total number of calls to the remote inference endpoint",
		},
		[]string{"outcome"},
	)

	inferenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ragagent",
			Subsystem: "inference",
			Name:      "duration_seconds",
			Help:      "Duration of calls to the remote inference endpoint in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(inferenceRequestsTotal, inferenceDuration)
}

func observeInference(outcome string, seconds float64) {
	inferenceRequestsTotal.WithLabelValues(outcome).Inc()
	inferenceDuration.WithLabelValues(outcome).Observe(seconds)
}
