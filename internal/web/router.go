package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/nameencoder/internal/encoder"
	"github.com/jusunglee/nameencoder/internal/health"
	"github.com/jusunglee/nameencoder/internal/rulesets"
	"github.com/jusunglee/nameencoder/internal/web/handlers"
	"github.com/jusunglee/nameencoder/internal/web/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config describes the rule set served by the router.
type Config struct {
	RuleSet   rulesets.Table
	Pipeline  *encoder.Pipeline
	Available []rulesets.Table
	Workers   int
	MaxBatch  int
	// RateLimit is the number of batch requests per client IP per minute.
	RateLimit int
}

type Router struct {
	cfg Config
	log *slog.Logger
}

func NewRouter(cfg Config, log *slog.Logger) *Router {
	if cfg.MaxBatch < 1 {
		cfg.MaxBatch = 1000
	}
	if cfg.RateLimit < 1 {
		cfg.RateLimit = 60
	}
	return &Router{cfg: cfg, log: log}
}

// Handler builds the HTTP handler. The rate limiter's sweeper stops when ctx is done.
func (r *Router) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	name := r.cfg.RuleSet.Name
	encodeHandler := handlers.NewEncodeHandler(name, r.cfg.Pipeline, r.cfg.Workers, r.cfg.MaxBatch, r.log)
	ruleSetHandler := handlers.NewRuleSetHandler(r.cfg.RuleSet, r.cfg.Available)

	rateLimiter := middleware.NewRateLimiter(ctx, r.cfg.RateLimit, time.Minute)

	mux.Handle("GET /api/v1/encode",
		middleware.Chain(
			http.HandlerFunc(encodeHandler.Encode),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=300"),
		),
	)

	mux.Handle("POST /api/v1/encode",
		middleware.Chain(
			http.HandlerFunc(encodeHandler.EncodeBatch),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /api/v1/equal",
		middleware.Chain(
			http.HandlerFunc(encodeHandler.Equal),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=300"),
		),
	)

	mux.Handle("GET /api/v1/rulesets",
		middleware.Chain(
			http.HandlerFunc(ruleSetHandler.List),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
		),
	)

	mux.Handle("GET /health", health.Handler(name, r.cfg.Pipeline.Layers()))
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Chain(mux, middleware.CORS, middleware.RequestID)
}
