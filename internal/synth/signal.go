package synth

import (
	"math"
	"sort"

	"cip-engine/internal/domain"
	"cip-engine/internal/sampling"
)

// RampTerm returns the vibration increase for a failure daysToFailure days ahead.
func RampTerm(factor float64, daysToFailure int, decayDays float64) float64 {
	return factor * math.Exp(-(float64(daysToFailure) / decayDays))
}

// SynthesizeReadings produces one reading per asset per day for days 1..HorizonDays,
// in ascending day order and fleet order within a day.
// Per (day, asset) the vibration baseline is drawn before the temperature.
// When a failure of the asset falls in (day, day+RampWindowDays], a ramp term for
// the nearest such failure is added to the vibration. Vibration is clamped at 0.
func SynthesizeReadings(
	s *sampling.Sampler,
	cfg domain.SimulationConfig,
	fleet []domain.Asset,
	events []domain.FailureEvent,
	degradationFactor float64,
) []domain.SensorReading {
	failureDays := failureDaysByAsset(events)

	readings := make([]domain.SensorReading, 0, cfg.HorizonDays*len(fleet))
	for day := 1; day <= cfg.HorizonDays; day++ {
		ts := cfg.DayTime(day)
		for _, asset := range fleet {
			vibration := s.Normal(cfg.VibrationMean, cfg.VibrationStdDev)
			if gap, ok := nextFailureWithin(failureDays[asset.AssetID], day, cfg.RampWindowDays); ok {
				vibration += RampTerm(degradationFactor, gap, cfg.RampDecayDays)
			}

			readings = append(readings, domain.SensorReading{
				Day:          day,
				Timestamp:    ts,
				AssetID:      asset.AssetID,
				VibrationRMS: math.Max(vibration, 0),
				BearingTempC: s.Normal(cfg.TempMean, cfg.TempStdDev),
			})
		}
	}
	return readings
}

// failureDaysByAsset groups failure days per asset, sorted ASC.
func failureDaysByAsset(events []domain.FailureEvent) map[string][]int {
	byAsset := make(map[string][]int)
	for _, e := range events {
		byAsset[e.AssetID] = append(byAsset[e.AssetID], e.Day)
	}
	for _, days := range byAsset {
		sort.Ints(days)
	}
	return byAsset
}

// nextFailureWithin returns the gap to the first failure day in (day, day+window].
// days must be sorted ASC.
func nextFailureWithin(days []int, day, window int) (int, bool) {
	i := sort.SearchInts(days, day+1)
	if i < len(days) && days[i] <= day+window {
		return days[i] - day, true
	}
	return 0, false
}
