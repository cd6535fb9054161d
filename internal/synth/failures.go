package synth

import (
	"sort"

	"cip-engine/internal/domain"
	"cip-engine/internal/sampling"
)

// WeibullScale backs the Weibull scale parameter out of a historical MTBF.
func WeibullScale(mtbfDays int, divisor float64) float64 {
	return float64(mtbfDays) / divisor
}

// GenerateFailureEvents draws cfg.FailureDrawsPerAsset failure offsets for one asset
// from Weibull(shape, MTBF/divisor). Offsets at or beyond the horizon are discarded;
// kept offsets are truncated to whole days. Zero events is a valid outcome.
// Events are returned in draw order.
func GenerateFailureEvents(s *sampling.Sampler, cfg domain.SimulationConfig, asset domain.Asset, shape float64) []domain.FailureEvent {
	scale := WeibullScale(asset.HistoricalMTBFDays, cfg.MTBFScaleDivisor)
	horizon := float64(cfg.HorizonDays)

	offsets := make([]float64, cfg.FailureDrawsPerAsset)
	for i := range offsets {
		offsets[i] = s.Weibull(shape, scale)
	}

	var events []domain.FailureEvent
	for _, t := range offsets {
		if t >= horizon {
			continue
		}
		day := int(t)
		events = append(events, domain.FailureEvent{
			AssetID:       asset.AssetID,
			Day:           day,
			OccurredAt:    cfg.DayTime(day),
			CostOfFailure: asset.CostOfFailure,
			DowntimeDays:  s.IntBetween(cfg.DowntimeMinDays, cfg.DowntimeMaxDays),
		})
	}
	return events
}

// GenerateFleetFailures generates failure events for every asset and returns
// them ordered by day ASC. Ties keep fleet order, then draw order.
func GenerateFleetFailures(s *sampling.Sampler, cfg domain.SimulationConfig, fleet []domain.Asset, shape float64) []domain.FailureEvent {
	var all []domain.FailureEvent
	for _, asset := range fleet {
		all = append(all, GenerateFailureEvents(s, cfg, asset, shape)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Day < all[j].Day
	})
	return all
}
