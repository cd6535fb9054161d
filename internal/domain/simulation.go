package domain

import (
	"fmt"
	"time"
)

// SimulationConfig holds the fixed assumptions of a synthetic run.
type SimulationConfig struct {
	HorizonDays int       // simulated days
	AssetCount  int       // number of assets in the fleet
	StartDate   time.Time // day 0 of the simulation

	// Fleet generation
	COFMin float64 // cost of failure lower bound (inclusive), IDR
	COFMax float64 // cost of failure upper bound (exclusive), IDR

	// Failure generation
	FailureDrawsPerAsset int
	MTBFScaleDivisor     float64 // weibull scale = MTBF / divisor
	DowntimeMinDays      int     // inclusive
	DowntimeMaxDays      int     // inclusive

	// Signal synthesis
	VibrationMean   float64
	VibrationStdDev float64
	TempMean        float64
	TempStdDev      float64
	RampWindowDays  int     // ramp applies when a failure is within this many days
	RampDecayDays   float64 // ramp = factor * exp(-(days_to_failure / decay))

	// Labeling
	LookbackDays int

	// Model evaluation
	TestFraction float64
	SplitSeed    int64

	// Risk
	RiskSensitivity float64

	// Gap analysis (digital maintenance assumptions)
	PMCostPerAsset     float64 // IDR
	SensorCostPerAsset float64 // IDR
	PMDowntimePerAsset int     // days
}

// DefaultSimulationConfig returns the three-year, five-asset setup.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		HorizonDays: 1095,
		AssetCount:  5,
		StartDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),

		COFMin: 80_000_000,
		COFMax: 150_000_000,

		FailureDrawsPerAsset: 5,
		MTBFScaleDivisor:     0.9,
		DowntimeMinDays:      5,
		DowntimeMaxDays:      10,

		VibrationMean:   5.0,
		VibrationStdDev: 0.5,
		TempMean:        60.0,
		TempStdDev:      1.5,
		RampWindowDays:  30,
		RampDecayDays:   15,

		LookbackDays: 60,

		TestFraction: 0.2,
		SplitSeed:    42,

		RiskSensitivity: 0.15,

		PMCostPerAsset:     25_000_000,
		SensorCostPerAsset: 5_000_000,
		PMDowntimePerAsset: 2,
	}
}

// DayTime converts a day offset into a timestamp.
func (c SimulationConfig) DayTime(day int) time.Time {
	return c.StartDate.AddDate(0, 0, day)
}

// AssetID returns the identifier of the i-th asset (0-based).
func (c SimulationConfig) AssetID(i int) string {
	return fmt.Sprintf("ASET_FT_%d", i+1)
}

// Validate checks config at package boundary.
func (c SimulationConfig) Validate() error {
	switch {
	case c.HorizonDays <= 0:
		return fmt.Errorf("%w: horizon days must be positive", ErrInvalidParams)
	case c.AssetCount <= 0:
		return fmt.Errorf("%w: asset count must be positive", ErrInvalidParams)
	case c.MTBFScaleDivisor <= 0:
		return fmt.Errorf("%w: mtbf scale divisor must be positive", ErrInvalidParams)
	case c.DowntimeMaxDays < c.DowntimeMinDays:
		return fmt.Errorf("%w: downtime range [%d, %d]", ErrInvalidParams, c.DowntimeMinDays, c.DowntimeMaxDays)
	case c.TestFraction <= 0 || c.TestFraction >= 1:
		return fmt.Errorf("%w: test fraction must be in (0, 1)", ErrInvalidParams)
	case c.LookbackDays < 0:
		return fmt.Errorf("%w: lookback days must be non-negative", ErrInvalidParams)
	}
	return nil
}
