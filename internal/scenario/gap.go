package scenario

import "cip-engine/internal/domain"

// GapAnalysis compares historical (reactive) maintenance with digital
// condition-based maintenance for one fleet.
type GapAnalysis struct {
	BaselineCostIDR         float64
	BaselineDowntimeDays    int
	BaselineAvailability    float64
	DigitalCostIDR          float64
	DigitalDowntimeDays     int
	DigitalAvailability     float64
	SavingsIDR              float64
	SavingsPct              float64
	AvailabilityGainPct     float64
	TotalOperatingAssetDays int
}

// ComputeGap derives costs and availability from failure events and the fixed
// digital maintenance assumptions in cfg.
func ComputeGap(events []domain.FailureEvent, cfg domain.SimulationConfig) GapAnalysis {
	var g GapAnalysis

	for _, e := range events {
		g.BaselineCostIDR += e.CostOfFailure
		g.BaselineDowntimeDays += e.DowntimeDays
	}

	g.TotalOperatingAssetDays = cfg.HorizonDays * cfg.AssetCount
	total := float64(g.TotalOperatingAssetDays)
	if total > 0 {
		g.BaselineAvailability = (total - float64(g.BaselineDowntimeDays)) / total
	}

	g.DigitalCostIDR = (cfg.PMCostPerAsset + cfg.SensorCostPerAsset) * float64(cfg.AssetCount)
	g.DigitalDowntimeDays = cfg.PMDowntimePerAsset * cfg.AssetCount
	if total > 0 {
		g.DigitalAvailability = (total - float64(g.DigitalDowntimeDays)) / total
	}

	g.SavingsIDR = g.BaselineCostIDR - g.DigitalCostIDR
	if g.BaselineCostIDR > 0 {
		g.SavingsPct = g.SavingsIDR / g.BaselineCostIDR * 100
	}
	g.AvailabilityGainPct = (g.DigitalAvailability - g.BaselineAvailability) * 100

	return g
}
