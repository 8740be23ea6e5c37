package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/nameencoder/internal/config"
	"github.com/jusunglee/nameencoder/internal/logger"
	"github.com/jusunglee/nameencoder/internal/metrics"
	"github.com/jusunglee/nameencoder/internal/rulesets"
	"github.com/jusunglee/nameencoder/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("nameencoder-web")
	encFlags := config.AddFlags(fs)
	var (
		port      = fs.Int64Long("port", 3000, "HTTP server port")
		workers   = fs.IntLong("workers", 0, "parallel encoders per batch request, 0 uses GOMAXPROCS")
		maxBatch  = fs.IntLong("max-batch", 1000, "maximum words per batch request")
		rateLimit = fs.IntLong("rate-limit", 60, "batch requests per client IP per minute")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init()

	table, pipeline, err := encFlags.Encoding().Pipeline(log)
	if err != nil {
		return fmt.Errorf("loading rule set: %w", err)
	}
	metrics.RuleSetLayers.WithLabelValues(table.Name).Set(float64(pipeline.Layers()))

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	router := web.NewRouter(web.Config{
		RuleSet:   table,
		Pipeline:  pipeline,
		Available: rulesets.All(),
		Workers:   *workers,
		MaxBatch:  *maxBatch,
		RateLimit: *rateLimit,
	}, log)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           router.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, shutting down gracefully", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "server shutdown error", "error", err)
		}
		cancel(errors.New("signal received"))
	}()

	log.InfoContext(ctx, "starting web server", "port", *port, "ruleset", table.Name, "layers", pipeline.Layers())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
