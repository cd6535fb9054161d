package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"golang.org/x/sync/errgroup"

	"cip-engine/internal/domain"
	"cip-engine/internal/idhash"
)

// Comparison holds the outcome of running all scenarios.
type Comparison struct {
	// Results of completed scenarios, in scenario order.
	Results []domain.ScenarioResult
	// Skipped lists scenarios that produced insufficient data, in scenario order.
	Skipped []string
}

// Comparator runs a fixed ordered list of scenarios.
type Comparator struct {
	runner    *Runner
	scenarios []domain.NamedScenario
	baseSeed  int64
	workers   int
	logger    *log.Logger
}

// ComparatorOptions contains configuration for creating a Comparator.
type ComparatorOptions struct {
	Runner    *Runner
	Scenarios []domain.NamedScenario // defaults to domain.DefaultScenarios()
	BaseSeed  int64
	Workers   int         // <= 1 runs sequentially
	Logger    *log.Logger // optional
}

// NewComparator creates a scenario comparator.
func NewComparator(opts ComparatorOptions) *Comparator {
	if opts.Scenarios == nil {
		opts.Scenarios = domain.DefaultScenarios()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Comparator{
		runner:    opts.Runner,
		scenarios: opts.Scenarios,
		baseSeed:  opts.BaseSeed,
		workers:   opts.Workers,
		logger:    opts.Logger,
	}
}

// SeedFor returns the seed a scenario runs with.
func (c *Comparator) SeedFor(name string) int64 {
	return idhash.ScenarioSeed(c.baseSeed, name)
}

// Compare runs every scenario once. Scenarios returning ErrInsufficientData are
// omitted from Results and listed in Skipped. Any other error aborts.
// Output is identical for any worker count.
func (c *Comparator) Compare(ctx context.Context) (*Comparison, error) {
	results := make([]*domain.ScenarioResult, len(c.scenarios))
	skipped := make([]bool, len(c.scenarios))

	runOne := func(ctx context.Context, i int) error {
		sc := c.scenarios[i]
		c.logger.Printf(">>> starting scenario: %s <<<", sc.Name)

		res, err := c.runner.Run(ctx, sc.Name, sc.Params, c.SeedFor(sc.Name))
		if errors.Is(err, ErrInsufficientData) {
			skipped[i] = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("run scenario %s: %w", sc.Name, err)
		}
		results[i] = res
		return nil
	}

	if c.workers <= 1 {
		for i := range c.scenarios {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := runOne(ctx, i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.workers)
		for i := range c.scenarios {
			g.Go(func() error { return runOne(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	cmp := &Comparison{}
	for i, sc := range c.scenarios {
		switch {
		case skipped[i]:
			cmp.Skipped = append(cmp.Skipped, sc.Name)
		case results[i] != nil:
			cmp.Results = append(cmp.Results, *results[i])
		}
	}
	return cmp, nil
}
