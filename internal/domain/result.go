package domain

// ScenarioResult represents the summary of one scenario run.
// Produced once per scenario, never mutated.
type ScenarioResult struct {
	Scenario    string  `json:"scenario"`
	BetaWeibull float64 `json:"beta_weibull"`

	// Model quality on the test partition
	RMSE float64 `json:"rul_rmse"`
	R2   float64 `json:"r2_score"`

	// Gap analysis
	SavingsIDR          float64 `json:"savings_idr"`
	SavingsPct          float64 `json:"savings_pct"`
	AvailabilityGainPct float64 `json:"availability_gain_pct"`

	// Diagnostics
	Seed             int64   `json:"seed"`
	FailureEvents    int     `json:"failure_events"`
	LabeledReadings  int     `json:"labeled_readings"`
	TrainSize        int     `json:"train_size"`
	TestSize         int     `json:"test_size"`
	MeanRiskScoreIDR float64 `json:"mean_risk_score_idr"`
}

// SavingsIDRMillions returns savings in millions of IDR.
func (r ScenarioResult) SavingsIDRMillions() float64 {
	return r.SavingsIDR / 1_000_000
}

// RiskDecision represents the risk assessment of one test-partition reading.
type RiskDecision struct {
	ActualRUL    int
	PredictedRUL float64 // rounded to 2 decimals
	POF          float64 // probability of failure, not clamped
	RiskScoreIDR float64
}
