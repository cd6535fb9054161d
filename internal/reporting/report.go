package reporting

import "time"

// Report represents the scenario comparison report.
type Report struct {
	// Metadata
	GeneratedAt   time.Time
	ScenarioCount int // scenarios attempted, including skipped ones

	// Rows in scenario order
	Rows []ScenarioRow

	// Scenarios skipped for insufficient labeled data
	Skipped []string
}

// ScenarioRow represents one row in the comparison table.
type ScenarioRow struct {
	Scenario            string  `json:"scenario"`
	BetaWeibull         float64 `json:"beta_weibull"`
	RULRMSE             float64 `json:"rul_rmse"`
	R2Score             float64 `json:"r2_score"`
	SavingsIDRMn        float64 `json:"savings_idr_mn"` // IDR millions
	SavingsPct          float64 `json:"savings_pct"`
	AvailabilityGainPct float64 `json:"availability_gain_pct"`
	Seed                int64   `json:"seed"`
	FailureEvents       int     `json:"failure_events"`
	LabeledReadings     int     `json:"labeled_readings"`
	MeanRiskScoreIDR    float64 `json:"mean_risk_score_idr"`
}
