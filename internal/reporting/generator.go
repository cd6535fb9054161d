package reporting

import (
	"context"
	"time"

	"cip-engine/internal/domain"
	"cip-engine/internal/scenario"
)

// Generator produces reports by running a scenario comparison.
type Generator struct {
	comparator    *scenario.Comparator
	scenarioCount int
	now           func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(comparator *scenario.Comparator, scenarioCount int) *Generator {
	return &Generator{
		comparator:    comparator,
		scenarioCount: scenarioCount,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate runs every scenario and builds the report.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	cmp, err := g.comparator.Compare(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReport(cmp, g.scenarioCount, g.now()), nil
}

// BuildReport converts a comparison into a report.
func BuildReport(cmp *scenario.Comparison, scenarioCount int, generatedAt time.Time) *Report {
	return &Report{
		GeneratedAt:   generatedAt,
		ScenarioCount: scenarioCount,
		Rows:          Rows(cmp.Results),
		Skipped:       cmp.Skipped,
	}
}

// Rows converts scenario results into table rows, preserving order.
func Rows(results []domain.ScenarioResult) []ScenarioRow {
	rows := make([]ScenarioRow, len(results))
	for i, r := range results {
		rows[i] = ScenarioRow{
			Scenario:            r.Scenario,
			BetaWeibull:         r.BetaWeibull,
			RULRMSE:             r.RMSE,
			R2Score:             r.R2,
			SavingsIDRMn:        r.SavingsIDRMillions(),
			SavingsPct:          r.SavingsPct,
			AvailabilityGainPct: r.AvailabilityGainPct,
			Seed:                r.Seed,
			FailureEvents:       r.FailureEvents,
			LabeledReadings:     r.LabeledReadings,
			MeanRiskScoreIDR:    r.MeanRiskScoreIDR,
		}
	}
	return rows
}
