package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postcraft_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postcraft_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	// RPC metrics
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postcraft_rpc_requests_total",
			Help: "Total JSON-RPC requests by method",
		},
		[]string{"method"},
	)

	TasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postcraft_tasks_total",
			Help: "Finished tasks by final state",
		},
		[]string{"state"},
	)

	// Pipeline metrics
	ExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "postcraft_extraction_duration_seconds",
			Help:    "Blog fetch and clean latency",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	PostsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postcraft_posts_generated_total",
			Help: "Posts produced per platform, by outcome",
		},
		[]string{"platform", "outcome"}, // "generated" or "placeholder"
	)

	ProviderCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postcraft_provider_calls_total",
			Help: "Generation calls per provider, by outcome",
		},
		[]string{"provider", "outcome"}, // "success" or "error"
	)

	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postcraft_provider_latency_seconds",
			Help:    "Generation call latency per provider",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 40},
		},
		[]string{"provider"},
	)
)
