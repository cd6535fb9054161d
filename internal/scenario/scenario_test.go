package scenario

import (
	"bytes"
	"context"
	"errors"
	"log"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cip-engine/internal/domain"
	"cip-engine/internal/observability"
	"cip-engine/internal/regression"
)

// noFailureParams never produces a failure inside the horizon.
var noFailureParams = domain.ScenarioParams{
	WeibullBeta:       3.5,
	MTBFRange:         domain.MTBFRange{Min: 10_000_000, Max: 10_000_001},
	DegradationFactor: 5.0,
}

func newTestRunner(opts RunnerOptions) *Runner {
	if opts.Simulation.HorizonDays == 0 {
		opts.Simulation = domain.DefaultSimulationConfig()
	}
	return NewRunner(opts)
}

func TestRunner_StandardScenario(t *testing.T) {
	r := newTestRunner(RunnerOptions{})

	res, err := r.Run(context.Background(), domain.ScenarioStandardNormal, domain.ScenarioParamsStandardNormal, 42)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 3.5, res.BetaWeibull)
	assert.Equal(t, domain.ScenarioStandardNormal, res.Scenario)
	assert.GreaterOrEqual(t, res.RMSE, 0.0)
	assert.LessOrEqual(t, res.R2, 1.0)
	assert.False(t, math.IsNaN(res.R2))
	assert.Positive(t, res.FailureEvents)
	assert.Equal(t, res.LabeledReadings, res.TrainSize+res.TestSize)
	assert.Equal(t, int(math.Ceil(float64(res.LabeledReadings)*0.2)), res.TestSize)
	assert.Positive(t, res.MeanRiskScoreIDR)
	assert.Equal(t, int64(42), res.Seed)
}

func TestRunner_SameSeedSameResult(t *testing.T) {
	r := newTestRunner(RunnerOptions{})
	ctx := context.Background()

	for _, sc := range domain.DefaultScenarios() {
		a, errA := r.Run(ctx, sc.Name, sc.Params, 7)
		b, errB := r.Run(ctx, sc.Name, sc.Params, 7)
		require.Equal(t, errA, errB)
		assert.Equal(t, a, b, sc.Name)
	}
}

func TestRunner_DifferentSeedDifferentResult(t *testing.T) {
	r := newTestRunner(RunnerOptions{})
	ctx := context.Background()

	a, err := r.Run(ctx, "S", domain.ScenarioParamsExtremeHighHarsh, 1)
	require.NoError(t, err)
	b, err := r.Run(ctx, "S", domain.ScenarioParamsExtremeHighHarsh, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.RMSE, b.RMSE)
}

func TestRunner_NoFailuresIsInsufficientData(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics("test", reg)
	r := newTestRunner(RunnerOptions{Metrics: m})

	res, err := r.Run(context.Background(), "QUIET", noFailureParams, 42)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScenarioRunsTotal.WithLabelValues("QUIET", observability.OutcomeSkipped)))
}

func TestRunner_InvalidParams(t *testing.T) {
	r := newTestRunner(RunnerOptions{})

	_, err := r.Run(context.Background(), "BAD", domain.ScenarioParams{WeibullBeta: 0}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
	assert.False(t, errors.Is(err, ErrInsufficientData))
}

func TestRunner_CanceledContext(t *testing.T) {
	r := newTestRunner(RunnerOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, "S", domain.ScenarioParamsStandardNormal, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// meanModel predicts the training mean regardless of features.
type meanModel struct {
	mean   float64
	fitted bool
}

func (m *meanModel) Fit(_ [][]float64, y []float64) error {
	for _, v := range y {
		m.mean += v
	}
	m.mean /= float64(len(y))
	m.fitted = true
	return nil
}

func (m *meanModel) Predict(X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i := range out {
		out[i] = m.mean
	}
	return out, nil
}

func TestRunner_ReplaceableModel(t *testing.T) {
	r := newTestRunner(RunnerOptions{
		ModelFactory: func() regression.Model { return &meanModel{} },
	})

	res, err := r.Run(context.Background(), "S", domain.ScenarioParamsStandardNormal, 3)
	require.NoError(t, err)
	// A constant predictor explains at most the test mean offset.
	assert.LessOrEqual(t, res.R2, 0.0+1e-9)
	assert.Positive(t, res.RMSE)
}

func TestRunner_LogsStages(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRunner(RunnerOptions{Logger: log.New(&buf, "", 0)})

	_, err := r.Run(context.Background(), "S", domain.ScenarioParamsStandardNormal, 3)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[S] [1] generating synthetic data")
	assert.Contains(t, buf.String(), "[S] [4] running gap analysis")
}

func TestComputeGap(t *testing.T) {
	cfg := domain.DefaultSimulationConfig()
	events := []domain.FailureEvent{
		{CostOfFailure: 100_000_000, DowntimeDays: 5},
		{CostOfFailure: 100_000_000, DowntimeDays: 7},
	}

	g := ComputeGap(events, cfg)

	assert.Equal(t, 200_000_000.0, g.BaselineCostIDR)
	assert.Equal(t, 12, g.BaselineDowntimeDays)
	assert.Equal(t, 5475, g.TotalOperatingAssetDays)
	assert.Equal(t, 150_000_000.0, g.DigitalCostIDR)
	assert.Equal(t, 10, g.DigitalDowntimeDays)
	assert.Equal(t, 50_000_000.0, g.SavingsIDR)
	assert.InDelta(t, 25.0, g.SavingsPct, 1e-9)
	assert.InDelta(t, 2.0/5475*100, g.AvailabilityGainPct, 1e-9)
}

func TestComputeGap_NoEvents(t *testing.T) {
	g := ComputeGap(nil, domain.DefaultSimulationConfig())

	assert.Equal(t, 0.0, g.SavingsPct)
	assert.Equal(t, -150_000_000.0, g.SavingsIDR)
	assert.Negative(t, g.AvailabilityGainPct)
}

func TestComparator_DefaultScenarios(t *testing.T) {
	c := NewComparator(ComparatorOptions{Runner: newTestRunner(RunnerOptions{}), BaseSeed: 2026})

	cmp, err := c.Compare(context.Background())
	require.NoError(t, err)
	require.Len(t, cmp.Results, 3)
	assert.Empty(t, cmp.Skipped)

	for i, sc := range domain.DefaultScenarios() {
		assert.Equal(t, sc.Name, cmp.Results[i].Scenario)
		assert.Equal(t, sc.Params.WeibullBeta, cmp.Results[i].BetaWeibull)
		assert.Equal(t, c.SeedFor(sc.Name), cmp.Results[i].Seed)
	}
}

func TestComparator_SkipsInsufficientScenario(t *testing.T) {
	scenarios := []domain.NamedScenario{
		{Name: "A", Params: domain.ScenarioParamsStandardNormal},
		{Name: "QUIET", Params: noFailureParams},
		{Name: "C", Params: domain.ScenarioParamsExtremeHighHarsh},
	}
	c := NewComparator(ComparatorOptions{
		Runner:    newTestRunner(RunnerOptions{}),
		Scenarios: scenarios,
		BaseSeed:  1,
	})

	cmp, err := c.Compare(context.Background())
	require.NoError(t, err)

	require.Len(t, cmp.Results, len(scenarios)-1)
	assert.Equal(t, "A", cmp.Results[0].Scenario)
	assert.Equal(t, "C", cmp.Results[1].Scenario)
	assert.Equal(t, []string{"QUIET"}, cmp.Skipped)
}

func TestComparator_ParallelMatchesSequential(t *testing.T) {
	runner := newTestRunner(RunnerOptions{})

	seq, err := NewComparator(ComparatorOptions{Runner: runner, BaseSeed: 5}).Compare(context.Background())
	require.NoError(t, err)

	par, err := NewComparator(ComparatorOptions{Runner: runner, BaseSeed: 5, Workers: 3}).Compare(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestComparator_AbortsOnUnexpectedError(t *testing.T) {
	scenarios := []domain.NamedScenario{
		{Name: "A", Params: domain.ScenarioParamsStandardNormal},
		{Name: "BAD", Params: domain.ScenarioParams{WeibullBeta: -1}},
	}
	c := NewComparator(ComparatorOptions{Runner: newTestRunner(RunnerOptions{}), Scenarios: scenarios})

	_, err := c.Compare(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
}
