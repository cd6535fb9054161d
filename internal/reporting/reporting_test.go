package reporting

import (
	"context"
	"strings"
	"testing"
	"time"

	"cip-engine/internal/domain"
	"cip-engine/internal/scenario"
)

func sampleResults() []domain.ScenarioResult {
	return []domain.ScenarioResult{
		{
			Scenario:            domain.ScenarioExtremeLowIdeal,
			BetaWeibull:         4.5,
			RMSE:                12.3456,
			R2:                  0.71,
			SavingsIDR:          123_456_789,
			SavingsPct:          25,
			AvailabilityGainPct: 0.0365,
			Seed:                11,
			FailureEvents:       8,
			LabeledReadings:     480,
			MeanRiskScoreIDR:    1_500_000.5,
		},
		{
			Scenario:    domain.ScenarioExtremeHighHarsh,
			BetaWeibull: 2.0,
			RMSE:        9.999,
			R2:          -0.5,
			SavingsIDR:  -10_000_000,
			SavingsPct:  -3.333,
		},
	}
}

func TestRows_ConvertsAndPreservesOrder(t *testing.T) {
	rows := Rows(sampleResults())

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Scenario != domain.ScenarioExtremeLowIdeal || rows[1].Scenario != domain.ScenarioExtremeHighHarsh {
		t.Errorf("Unexpected order: %s, %s", rows[0].Scenario, rows[1].Scenario)
	}
	if rows[0].SavingsIDRMn != 123.456789 {
		t.Errorf("Expected savings 123.456789 Mn, got %v", rows[0].SavingsIDRMn)
	}
	if rows[0].RULRMSE != 12.3456 || rows[0].R2Score != 0.71 {
		t.Errorf("Unexpected model metrics: %+v", rows[0])
	}
}

func TestRenderTable_TwoDecimals(t *testing.T) {
	table := RenderTable(Rows(sampleResults()))
	lines := strings.Split(strings.TrimSpace(table), "\n")

	if len(lines) != 4 {
		t.Fatalf("Expected header, separator and 2 rows, got %d lines:\n%s", len(lines), table)
	}
	if lines[0] != "| Scenario | Beta_Weibull | RUL_RMSE | R2_Score | Savings_IDR_Mn | Savings_Pct | Availability_Gain_Pct |" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[2] != "| EXTREME_LOW_IDEAL | 4.50 | 12.35 | 0.71 | 123.46 | 25.00 | 0.04 |" {
		t.Errorf("Unexpected row: %s", lines[2])
	}
	if lines[3] != "| EXTREME_HIGH_HARSH | 2.00 | 10.00 | -0.50 | -10.00 | -3.33 | 0.00 |" {
		t.Errorf("Unexpected row: %s", lines[3])
	}
}

func TestRenderMarkdown_InterpretationAndSkipped(t *testing.T) {
	r := &Report{
		GeneratedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ScenarioCount: 3,
		Rows:          Rows(sampleResults()),
		Skipped:       []string{domain.ScenarioStandardNormal},
	}

	md := RenderMarkdown(r)

	if !strings.Contains(md, "| EXTREME_LOW_IDEAL |") {
		t.Error("Missing table row")
	}
	if !strings.Contains(md, "Skipped (1 of 3): STANDARD_NORMAL") {
		t.Error("Missing skipped note")
	}
	for _, line := range Interpretation {
		if !strings.Contains(md, line) {
			t.Errorf("Missing interpretation line: %s", line)
		}
	}
	// Interpretation comes after the table.
	if strings.Index(md, Interpretation[0]) < strings.Index(md, "| EXTREME_HIGH_HARSH |") {
		t.Error("Interpretation rendered before table")
	}
}

func TestRenderMarkdown_NoRows(t *testing.T) {
	md := RenderMarkdown(&Report{ScenarioCount: 1, Skipped: []string{"QUIET"}})

	if strings.Contains(md, "| Scenario |") {
		t.Error("Table header should be omitted without rows")
	}
	if !strings.Contains(md, "No scenario produced enough labeled data.") {
		t.Error("Missing empty note")
	}
}

func TestRenderCSV(t *testing.T) {
	csv := RenderCSV(Rows(sampleResults()))
	lines := strings.Split(strings.TrimSpace(csv), "\n")

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "scenario,beta_weibull,rul_rmse,") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != "EXTREME_LOW_IDEAL,4.500000,12.345600,0.710000,123.456789,25.000000,0.036500,11,8,480,1500000.50" {
		t.Errorf("Unexpected row: %s", lines[1])
	}
	for i, line := range lines {
		if got := strings.Count(line, ","); got != 10 {
			t.Errorf("Line %d: expected 10 commas, got %d", i, got)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	runner := scenario.NewRunner(scenario.RunnerOptions{Simulation: domain.DefaultSimulationConfig()})
	comparator := scenario.NewComparator(scenario.ComparatorOptions{Runner: runner, BaseSeed: 42})
	gen := NewGenerator(comparator, len(domain.DefaultScenarios())).WithClock(func() time.Time { return fixedTime })

	r1, err := gen.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	r2, err := gen.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !r1.GeneratedAt.Equal(fixedTime) {
		t.Errorf("Expected GeneratedAt %v, got %v", fixedTime, r1.GeneratedAt)
	}
	if RenderMarkdown(r1) != RenderMarkdown(r2) {
		t.Error("Markdown output not deterministic")
	}
	if RenderCSV(r1.Rows) != RenderCSV(r2.Rows) {
		t.Error("CSV output not deterministic")
	}
	if len(r1.Rows)+len(r1.Skipped) != 3 {
		t.Errorf("Expected 3 scenarios accounted for, got %d rows + %d skipped", len(r1.Rows), len(r1.Skipped))
	}
}
