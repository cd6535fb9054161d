// Package main serves the executive dashboard data API: degradation curves,
// mock work orders, the scenario comparison and Prometheus metrics.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cip-engine/internal/api"
	"cip-engine/internal/config"
	"cip-engine/internal/observability"
	"cip-engine/internal/reporting"
	"cip-engine/internal/scenario"
)

func main() {
	logger := log.New(os.Stdout, "[dashboard] ", log.LstdFlags)

	cfg, err := config.Load("")
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	d, err := cfg.Domain()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := observability.NewMetrics("", reg)

	runner := scenario.NewRunner(scenario.RunnerOptions{
		Simulation: d.Simulation,
		Metrics:    m,
		Logger:     logger,
	})
	comparator := scenario.NewComparator(scenario.ComparatorOptions{
		Runner:    runner,
		Scenarios: d.Scenarios,
		BaseSeed:  cfg.Comparison.Seed,
		Workers:   cfg.Comparison.Workers,
		Logger:    logger,
	})

	srv := api.NewServer(api.Options{
		Reports:        reporting.NewGenerator(comparator, len(d.Scenarios)),
		Metrics:        m,
		Gatherer:       reg,
		Logger:         logger,
		AccessLog:      os.Stdout,
		AllowedOrigins: cfg.Dashboard.AllowedOrigins,
		StreamInterval: cfg.Dashboard.StreamInterval,
	})

	httpServer := &http.Server{
		Addr:    cfg.Dashboard.Address,
		Handler: srv.Handler(),
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		sig := <-sigCh
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Dashboard.GracefulTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Printf("Graceful shutdown failed: %v", err)
		}
	}()

	logger.Printf("Starting HTTP server on %s", cfg.Dashboard.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("HTTP server error: %v", err)
	}

	<-done
	logger.Println("Shutdown complete")
}
