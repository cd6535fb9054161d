// Package labeling attaches remaining-useful-life labels to sensor readings.
package labeling

import (
	"cip-engine/internal/domain"
)

// DefaultLookbackDays is the window before a failure in which readings are labeled.
const DefaultLookbackDays = 60

// readingKey identifies a reading by asset and day.
type readingKey struct {
	assetID string
	day     int
}

// LabelRUL computes RUL for every reading covered by a failure window.
//
// For each failure event, readings of the same asset with day in
// [event.Day - lookbackDays, event.Day] receive candidate event.Day - reading.Day.
// A reading covered by several windows keeps the minimum candidate.
// Readings covered by no window are dropped. The input slice is not modified;
// the output keeps input order.
func LabelRUL(readings []domain.SensorReading, events []domain.FailureEvent, lookbackDays int) []domain.SensorReading {
	if len(readings) == 0 || len(events) == 0 {
		return nil
	}

	index := make(map[readingKey]int, len(readings))
	for i, r := range readings {
		index[readingKey{assetID: r.AssetID, day: r.Day}] = i
	}

	labels := make(map[int]int)
	for _, e := range events {
		for day := e.Day - lookbackDays; day <= e.Day; day++ {
			i, ok := index[readingKey{assetID: e.AssetID, day: day}]
			if !ok {
				continue
			}
			candidate := e.Day - day
			if current, seen := labels[i]; !seen || candidate < current {
				labels[i] = candidate
			}
		}
	}

	labeled := make([]domain.SensorReading, 0, len(labels))
	for i, r := range readings {
		rul, ok := labels[i]
		if !ok {
			continue
		}
		r.RUL = &rul
		labeled = append(labeled, r)
	}
	return labeled
}
