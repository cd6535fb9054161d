package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when scenario parameters fail validation.
var ErrInvalidParams = errors.New("invalid scenario params")

// MTBFRange bounds the historical MTBF draw in days.
// Draws are uniform integers in [Min, Max).
type MTBFRange struct {
	Min int
	Max int
}

// ScenarioParams represents one set of generation parameters.
type ScenarioParams struct {
	WeibullBeta       float64 // Weibull shape
	MTBFRange         MTBFRange
	DegradationFactor float64 // vibration ramp amplitude before failure
}

// Validate checks params at package boundary.
func (p ScenarioParams) Validate() error {
	if p.WeibullBeta <= 0 {
		return fmt.Errorf("%w: weibull beta must be positive, got %v", ErrInvalidParams, p.WeibullBeta)
	}
	if p.MTBFRange.Min < 0 || p.MTBFRange.Max < p.MTBFRange.Min {
		return fmt.Errorf("%w: mtbf range [%d, %d)", ErrInvalidParams, p.MTBFRange.Min, p.MTBFRange.Max)
	}
	if p.DegradationFactor < 0 {
		return fmt.Errorf("%w: degradation factor must be non-negative, got %v", ErrInvalidParams, p.DegradationFactor)
	}
	return nil
}

// NamedScenario pairs a scenario name with its params.
type NamedScenario struct {
	Name   string
	Params ScenarioParams
}

// Scenario name constants
const (
	ScenarioExtremeLowIdeal  = "EXTREME_LOW_IDEAL"
	ScenarioStandardNormal   = "STANDARD_NORMAL"
	ScenarioExtremeHighHarsh = "EXTREME_HIGH_HARSH"
)

// Predefined scenario params.
var (
	// Slow wear-out, high MTBF, slow signal rise.
	ScenarioParamsExtremeLowIdeal = ScenarioParams{
		WeibullBeta:       4.5,
		MTBFRange:         MTBFRange{Min: 400, Max: 500},
		DegradationFactor: 3.0,
	}

	ScenarioParamsStandardNormal = ScenarioParams{
		WeibullBeta:       3.5,
		MTBFRange:         MTBFRange{Min: 250, Max: 350},
		DegradationFactor: 5.0,
	}

	// Fast wear-out, low MTBF, steep signal rise.
	ScenarioParamsExtremeHighHarsh = ScenarioParams{
		WeibullBeta:       2.0,
		MTBFRange:         MTBFRange{Min: 150, Max: 200},
		DegradationFactor: 8.0,
	}
)

// DefaultScenarios returns the predefined scenarios in reporting order.
func DefaultScenarios() []NamedScenario {
	return []NamedScenario{
		{Name: ScenarioExtremeLowIdeal, Params: ScenarioParamsExtremeLowIdeal},
		{Name: ScenarioStandardNormal, Params: ScenarioParamsStandardNormal},
		{Name: ScenarioExtremeHighHarsh, Params: ScenarioParamsExtremeHighHarsh},
	}
}
