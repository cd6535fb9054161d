// Package degradation computes the single-asset degradation curve behind the
// executive dashboard: a Weibull-shaped vibration trend, the first crossing of
// the critical threshold, and the financial exposure of the remaining horizon.
package degradation

import (
	"errors"
	"fmt"
	"math"

	"cip-engine/internal/sampling"
)

// ErrInvalidInput is returned when dashboard inputs are out of range.
var ErrInvalidInput = errors.New("invalid dashboard input")

// Input bounds
const (
	MinBeta         = 1.0
	MaxBeta         = 3.5
	MinDowntimeCost = 10.0   // IDR millions per day
	MaxDowntimeCost = 1000.0 // IDR millions per day
)

// Input holds the dashboard controls.
type Input struct {
	Beta              float64  `json:"beta"`
	DowntimeCostMnIDR float64  `json:"downtime_cost_mn_idr"` // IDR millions per day
	Terminal          Terminal `json:"terminal"`
}

// DefaultInput returns the initial dashboard controls.
func DefaultInput() Input {
	return Input{Beta: 2.0, DowntimeCostMnIDR: 201, Terminal: TerminalJakarta}
}

// Validate checks input ranges.
func (in Input) Validate() error {
	if math.IsNaN(in.Beta) || in.Beta < MinBeta || in.Beta > MaxBeta {
		return fmt.Errorf("%w: beta %v outside [%.1f, %.1f]", ErrInvalidInput, in.Beta, MinBeta, MaxBeta)
	}
	if math.IsNaN(in.DowntimeCostMnIDR) || in.DowntimeCostMnIDR < MinDowntimeCost || in.DowntimeCostMnIDR > MaxDowntimeCost {
		return fmt.Errorf("%w: downtime cost %v outside [%.0f, %.0f]", ErrInvalidInput, in.DowntimeCostMnIDR, MinDowntimeCost, MaxDowntimeCost)
	}
	if !in.Terminal.Valid() {
		return fmt.Errorf("%w: unknown terminal %q", ErrInvalidInput, in.Terminal)
	}
	return nil
}

// Curve parameters of the dashboard model.
type Params struct {
	HorizonDays int
	Baseline    float64 // mm/s RMS
	TimeScale   float64 // days; trend = (day/TimeScale)^beta
	NoiseStdDev float64
	Threshold   float64 // critical alarm level, mm/s RMS
}

// DefaultParams returns the one-year dashboard model.
func DefaultParams() Params {
	return Params{
		HorizonDays: 365,
		Baseline:    0.8,
		TimeScale:   100,
		NoiseStdDev: 0.08,
		Threshold:   4.5,
	}
}

// Point is one day of the degradation curve.
type Point struct {
	Day          int     `json:"day"`
	VibrationRMS float64 `json:"vibration_rms"`
}

// Assessment is the dashboard view of one simulated asset.
type Assessment struct {
	Input             Input   `json:"input"`
	Curve             []Point `json:"curve"`
	Threshold         float64 `json:"threshold"`
	ThresholdCrossed  bool    `json:"threshold_crossed"`
	FailureDay        int     `json:"failure_day"`
	RemainingLifeDays int     `json:"remaining_life_days"`
	RiskCostMnIDR     float64 `json:"risk_cost_mn_idr"`
	LastVibrationRMS  float64 `json:"last_vibration_rms"`
}

// Engine evaluates dashboard inputs.
type Engine struct {
	params Params
}

// NewEngine creates an engine with params.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Curve generates vibration = Baseline + (day/TimeScale)^beta + noise for days 1..HorizonDays.
func (e *Engine) Curve(s *sampling.Sampler, beta float64) []Point {
	points := make([]Point, e.params.HorizonDays)
	for i := range points {
		day := i + 1
		trend := e.params.Baseline + math.Pow(float64(day)/e.params.TimeScale, beta)
		points[i] = Point{
			Day:          day,
			VibrationRMS: trend + s.Normal(0, e.params.NoiseStdDev),
		}
	}
	return points
}

// FailureDay returns the first day whose vibration exceeds threshold.
// If the curve never crosses, it returns the last day of the horizon and false.
func FailureDay(curve []Point, threshold float64, horizonDays int) (int, bool) {
	for _, p := range curve {
		if p.VibrationRMS > threshold {
			return p.Day, true
		}
	}
	return horizonDays, false
}

// RiskCost returns max(0, remainingDays * downtimeCost).
func RiskCost(remainingDays int, downtimeCost float64) float64 {
	return math.Max(0, float64(remainingDays)*downtimeCost)
}

// Assess validates input, generates the curve and derives the assessment.
func (e *Engine) Assess(s *sampling.Sampler, in Input) (*Assessment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	curve := e.Curve(s, in.Beta)
	failureDay, crossed := FailureDay(curve, e.params.Threshold, e.params.HorizonDays)
	remaining := e.params.HorizonDays - failureDay

	a := &Assessment{
		Input:             in,
		Curve:             curve,
		Threshold:         e.params.Threshold,
		ThresholdCrossed:  crossed,
		FailureDay:        failureDay,
		RemainingLifeDays: remaining,
		RiskCostMnIDR:     RiskCost(remaining, in.DowntimeCostMnIDR),
	}
	if len(curve) > 0 {
		a.LastVibrationRMS = curve[len(curve)-1].VibrationRMS
	}
	return a, nil
}
