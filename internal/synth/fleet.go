// Package synth generates the synthetic fleet, failure history and
// daily sensor readings for one scenario run.
package synth

import (
	"cip-engine/internal/domain"
	"cip-engine/internal/sampling"
)

// GenerateFleet creates cfg.AssetCount assets.
// All costs of failure are drawn first, then all MTBF values.
func GenerateFleet(s *sampling.Sampler, cfg domain.SimulationConfig, mtbf domain.MTBFRange) []domain.Asset {
	n := cfg.AssetCount
	if n <= 0 {
		return nil
	}

	costs := make([]float64, n)
	for i := range costs {
		costs[i] = s.FloatRange(cfg.COFMin, cfg.COFMax)
	}

	mtbfDays := make([]int, n)
	for i := range mtbfDays {
		mtbfDays[i] = s.IntRange(mtbf.Min, mtbf.Max)
	}

	fleet := make([]domain.Asset, n)
	for i := range fleet {
		fleet[i] = domain.Asset{
			AssetID:            cfg.AssetID(i),
			CostOfFailure:      costs[i],
			HistoricalMTBFDays: mtbfDays[i],
		}
	}
	return fleet
}

// AverageCOF returns the mean cost of failure across the fleet.
func AverageCOF(fleet []domain.Asset) float64 {
	if len(fleet) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range fleet {
		sum += a.CostOfFailure
	}
	return sum / float64(len(fleet))
}
