package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_builder_generation_requests_total",
			Help: "Number of generation requests by feature and result",
		},
		[]string{"feature", "result"},
	)
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_builder_upstream_requests_total",
			Help: "Calls to the text generation provider by model and status code",
		},
		[]string{"model", "code"},
	)
	UpstreamDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_builder_upstream_duration_seconds",
			Help:    "Duration of calls to the text generation provider",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s..32s
		},
		[]string{"model"},
	)
)

func init() {
	prometheus.MustRegister(
		GenerationRequests,
		UpstreamRequests,
		UpstreamDurationSeconds,
	)
}

func ObserveGeneration(feature string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	GenerationRequests.WithLabelValues(feature, result).Inc()
}

func ObserveUpstream(model, code string, started time.Time) {
	UpstreamRequests.WithLabelValues(model, code).Inc()
	UpstreamDurationSeconds.WithLabelValues(model).Observe(time.Since(started).Seconds())
}
