// Package main runs every configured scenario through the synthetic
// predictive-maintenance pipeline and prints the comparison table.
//
// Settings come from the YAML file named by CIP_CONFIG, a .env file and
// CIP_* environment overrides. Stage logs go to stderr, the report to stdout.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cip-engine/internal/config"
	"cip-engine/internal/reporting"
	"cip-engine/internal/scenario"
)

func main() {
	logger := log.New(os.Stderr, "[compare] ", log.LstdFlags)

	if err := run(logger); err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	d, err := cfg.Domain()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := scenario.NewRunner(scenario.RunnerOptions{
		Simulation: d.Simulation,
		Logger:     logger,
	})
	comparator := scenario.NewComparator(scenario.ComparatorOptions{
		Runner:    runner,
		Scenarios: d.Scenarios,
		BaseSeed:  cfg.Comparison.Seed,
		Workers:   cfg.Comparison.Workers,
		Logger:    logger,
	})

	logger.Printf("Running %d scenarios (seed=%d, workers=%d)", len(d.Scenarios), cfg.Comparison.Seed, cfg.Comparison.Workers)

	report, err := reporting.NewGenerator(comparator, len(d.Scenarios)).Generate(ctx)
	if err != nil {
		return fmt.Errorf("compare scenarios: %w", err)
	}
	for _, name := range report.Skipped {
		logger.Printf("Skipped scenario %s: insufficient labeled data", name)
	}

	fmt.Print("\n" + reporting.RenderMarkdown(report))
	return nil
}
