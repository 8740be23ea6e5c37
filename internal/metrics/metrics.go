package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nameencoder_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nameencoder_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nameencoder_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Encoder metrics.
var (
	WordsEncoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nameencoder_words_encoded_total",
		Help: "Words encoded by rule set",
	}, []string{"ruleset"})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nameencoder_batch_size",
		Help:    "Number of words per batch encode request",
		Buckets: prometheus.ExponentialBuckets(1, 4, 7),
	})

	BatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nameencoder_batch_duration_seconds",
		Help:    "Duration of batch encodes in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"ruleset"})

	RuleSetLayers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nameencoder_ruleset_layers",
		Help: "Number of layers in each loaded rule set",
	}, []string{"ruleset"})
)
