package domain

import "time"

// Asset represents a monitored fuel-terminal asset.
// Created once per simulation run; immutable thereafter.
type Asset struct {
	AssetID            string
	CostOfFailure      float64 // IDR per failure
	HistoricalMTBFDays int     // historical mean time between failures
}

// FailureEvent represents one historical failure of an asset.
type FailureEvent struct {
	AssetID       string
	Day           int       // days since simulation start
	OccurredAt    time.Time // simulation start + Day
	CostOfFailure float64   // copied from Asset
	DowntimeDays  int
}

// SensorReading represents one daily reading of an asset.
type SensorReading struct {
	Day          int // days since simulation start
	Timestamp    time.Time
	AssetID      string
	VibrationRMS float64 // mm/s RMS, never negative
	BearingTempC float64

	// RUL is days until the next failure within the lookback window.
	// Nil means no known upcoming failure.
	RUL *int
}

// HasRUL reports whether the reading carries a RUL label.
func (r SensorReading) HasRUL() bool {
	return r.RUL != nil
}
