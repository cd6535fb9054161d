// Package risk maps predicted remaining useful life to a monetary risk score.
package risk

import (
	"math"

	"cip-engine/internal/domain"
)

// DefaultSensitivity is the decay constant of the probability-of-failure curve.
const DefaultSensitivity = 0.15

// ProbabilityOfFailure returns exp(-sensitivity * predictedRUL).
// The value is not clamped: a negative predicted RUL yields a value above 1.
func ProbabilityOfFailure(predictedRUL, sensitivity float64) float64 {
	return math.Exp(-sensitivity * predictedRUL)
}

// Score returns probability of failure times the average cost of failure.
func Score(predictedRUL, sensitivity, avgCOF float64) float64 {
	return ProbabilityOfFailure(predictedRUL, sensitivity) * avgCOF
}

// Scorer holds fixed sensitivity and average cost of failure for a run.
type Scorer struct {
	Sensitivity float64
	AvgCOF      float64
}

// NewScorer creates a scorer.
func NewScorer(sensitivity, avgCOF float64) Scorer {
	return Scorer{Sensitivity: sensitivity, AvgCOF: avgCOF}
}

// Decide builds the risk decision for one reading.
// The predicted RUL is rounded to 2 decimals before scoring.
func (s Scorer) Decide(actualRUL int, predictedRUL float64) domain.RiskDecision {
	rounded := math.Round(predictedRUL*100) / 100
	pof := ProbabilityOfFailure(rounded, s.Sensitivity)
	return domain.RiskDecision{
		ActualRUL:    actualRUL,
		PredictedRUL: rounded,
		POF:          pof,
		RiskScoreIDR: pof * s.AvgCOF,
	}
}

// DecideAll builds decisions for paired actual/predicted values.
// Extra values in the longer slice are ignored.
func (s Scorer) DecideAll(actual []int, predicted []float64) []domain.RiskDecision {
	n := min(len(actual), len(predicted))
	decisions := make([]domain.RiskDecision, n)
	for i := 0; i < n; i++ {
		decisions[i] = s.Decide(actual[i], predicted[i])
	}
	return decisions
}

// MeanRiskScore returns the mean risk score across decisions.
func MeanRiskScore(decisions []domain.RiskDecision) float64 {
	if len(decisions) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range decisions {
		sum += d.RiskScoreIDR
	}
	return sum / float64(len(decisions))
}
