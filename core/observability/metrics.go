package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	graphRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_requests_total",
			Help: "Total number of Graph API calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	graphRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graph_request_duration_seconds",
			Help:    "Latency of Graph API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	batchSubRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_batch_subrequests_total",
			Help: "Total number of batch sub-requests by result",
		},
		[]string{"result"},
	)

	reachEstimates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reach_estimates_total",
			Help: "Total number of reach estimates by result",
		},
		[]string{"result"},
	)

	keywordValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyword_validations_total",
			Help: "Total number of keyword validations by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(graphRequests)
	prometheus.MustRegister(graphRequestLatency)
	prometheus.MustRegister(batchSubRequests)
	prometheus.MustRegister(reachEstimates)
	prometheus.MustRegister(keywordValidations)
}

// Result labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultInvalid = "invalid"
	ResultValid   = "valid"
)

// RecordReach counts a finished reach estimate.
func RecordReach(result string) {
	reachEstimates.WithLabelValues(result).Inc()
}

// RecordKeyword counts a finished keyword validation.
func RecordKeyword(result string) {
	keywordValidations.WithLabelValues(result).Inc()
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
