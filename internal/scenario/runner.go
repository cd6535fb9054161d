// Package scenario runs the synthetic predictive-maintenance pipeline for
// named parameter sets and compares the results.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"cip-engine/internal/domain"
	"cip-engine/internal/labeling"
	"cip-engine/internal/observability"
	"cip-engine/internal/regression"
	"cip-engine/internal/risk"
	"cip-engine/internal/sampling"
	"cip-engine/internal/synth"
)

// ErrInsufficientData is returned when a scenario yields too few labeled
// readings to fit the model. Callers skip the scenario.
var ErrInsufficientData = errors.New("insufficient labeled data")

// Runner executes the pipeline for one scenario.
type Runner struct {
	cfg          domain.SimulationConfig
	modelFactory regression.Factory
	metrics      *observability.Metrics
	logger       *log.Logger
}

// RunnerOptions contains configuration for creating a Runner.
type RunnerOptions struct {
	Simulation   domain.SimulationConfig
	ModelFactory regression.Factory    // defaults to linear regression
	Metrics      *observability.Metrics // optional
	Logger       *log.Logger            // optional
}

// NewRunner creates a scenario runner.
func NewRunner(opts RunnerOptions) *Runner {
	if opts.ModelFactory == nil {
		opts.ModelFactory = regression.NewLinearFactory()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Runner{
		cfg:          opts.Simulation,
		modelFactory: opts.ModelFactory,
		metrics:      opts.Metrics,
		logger:       opts.Logger,
	}
}

// Run executes the pipeline for one scenario with the given seed.
// Steps:
//  1. Generate fleet and failure events
//  2. Synthesize sensor readings
//  3. Label RUL (returns ErrInsufficientData if nothing is labeled)
//  4. Split 80/20, fit the model, score the test partition
//  5. Score risk per test reading
//  6. Compute maintenance gap analysis
func (r *Runner) Run(ctx context.Context, name string, params domain.ScenarioParams, seed int64) (*domain.ScenarioResult, error) {
	start := time.Now()

	result, err := r.run(ctx, name, params, seed)

	switch {
	case err == nil:
		r.metrics.RecordScenarioRun(name, observability.OutcomeCompleted, time.Since(start))
		r.metrics.RecordScenarioResult(name, result.RMSE, result.SavingsIDR)
	case errors.Is(err, ErrInsufficientData):
		r.metrics.RecordScenarioRun(name, observability.OutcomeSkipped, time.Since(start))
	default:
		r.metrics.RecordScenarioRun(name, observability.OutcomeFailed, time.Since(start))
	}
	return result, err
}

func (r *Runner) run(ctx context.Context, name string, params domain.ScenarioParams, seed int64) (*domain.ScenarioResult, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := sampling.New(seed)

	// 1. Fleet and failure history
	r.logger.Printf("[%s] [1] generating synthetic data (beta=%.1f, mtbf=%d-%d, degradation=%.1f)",
		name, params.WeibullBeta, params.MTBFRange.Min, params.MTBFRange.Max, params.DegradationFactor)
	fleet := synth.GenerateFleet(s, r.cfg, params.MTBFRange)
	events := synth.GenerateFleetFailures(s, r.cfg, fleet, params.WeibullBeta)

	// 2. Sensor readings
	readings := synth.SynthesizeReadings(s, r.cfg, fleet, events, params.DegradationFactor)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3. RUL labels
	r.logger.Printf("[%s] [2] training RUL prediction model", name)
	labeled := labeling.LabelRUL(readings, events, r.cfg.LookbackDays)
	r.metrics.RecordSynthesis(len(readings), len(events), len(labeled))
	if len(labeled) == 0 {
		r.logger.Printf("[%s] warning: not enough RUL data to train, skipping scenario", name)
		return nil, fmt.Errorf("scenario %s: %w", name, ErrInsufficientData)
	}

	// 4. Train/test split and fit
	X, y := featureMatrix(labeled)
	trainIdx, testIdx := regression.TrainTestSplit(len(labeled), r.cfg.TestFraction, r.cfg.SplitSeed)

	model := r.modelFactory()
	if err := model.Fit(selectRows(X, trainIdx), selectFloats(y, trainIdx)); err != nil {
		if errors.Is(err, regression.ErrInsufficientRows) || errors.Is(err, regression.ErrEmptyFeatureMatrix) {
			r.logger.Printf("[%s] warning: training partition too small (%d rows), skipping scenario", name, len(trainIdx))
			return nil, fmt.Errorf("scenario %s: %w: %v", name, ErrInsufficientData, err)
		}
		return nil, fmt.Errorf("scenario %s: fit model: %w", name, err)
	}

	yTest := selectFloats(y, testIdx)
	yPred, err := model.Predict(selectRows(X, testIdx))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: predict: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 5. Risk per test reading
	r.logger.Printf("[%s] [3] computing dynamic risk and decisions", name)
	scorer := risk.NewScorer(r.cfg.RiskSensitivity, synth.AverageCOF(fleet))
	decisions := scorer.DecideAll(selectInts(labeled, testIdx), yPred)

	// 6. Gap analysis
	r.logger.Printf("[%s] [4] running gap analysis", name)
	gap := ComputeGap(events, r.cfg)

	return &domain.ScenarioResult{
		Scenario:            name,
		BetaWeibull:         params.WeibullBeta,
		RMSE:                regression.RMSE(yPred, yTest),
		R2:                  regression.R2(yPred, yTest),
		SavingsIDR:          gap.SavingsIDR,
		SavingsPct:          gap.SavingsPct,
		AvailabilityGainPct: gap.AvailabilityGainPct,
		Seed:                seed,
		FailureEvents:       len(events),
		LabeledReadings:     len(labeled),
		TrainSize:           len(trainIdx),
		TestSize:            len(testIdx),
		MeanRiskScoreIDR:    risk.MeanRiskScore(decisions),
	}, nil
}

// featureMatrix builds {vibration, temperature} rows and RUL targets.
func featureMatrix(labeled []domain.SensorReading) ([][]float64, []float64) {
	X := make([][]float64, len(labeled))
	y := make([]float64, len(labeled))
	for i, r := range labeled {
		X[i] = []float64{r.VibrationRMS, r.BearingTempC}
		y[i] = float64(*r.RUL)
	}
	return X, y
}

func selectRows(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = X[j]
	}
	return out
}

func selectFloats(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}

func selectInts(labeled []domain.SensorReading, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = *labeled[j].RUL
	}
	return out
}
