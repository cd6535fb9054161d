package idhash

import (
	"testing"

	"github.com/mr-tron/base58"
)

func TestScenarioSeed_Determinism(t *testing.T) {
	results := make([]int64, 10)
	for i := 0; i < 10; i++ {
		results[i] = ScenarioSeed(2026, "STANDARD_NORMAL")
	}

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Errorf("Determinism failed: results[%d]=%d != results[0]=%d", i, results[i], results[0])
		}
	}
}

func TestScenarioSeed_NonNegative(t *testing.T) {
	names := []string{"EXTREME_LOW_IDEAL", "STANDARD_NORMAL", "EXTREME_HIGH_HARSH", ""}
	for _, base := range []int64{-1, 0, 1, 42, 1 << 40} {
		for _, name := range names {
			if got := ScenarioSeed(base, name); got < 0 {
				t.Errorf("ScenarioSeed(%d, %q) = %d, want non-negative", base, name, got)
			}
		}
	}
}

func TestScenarioSeed_DifferentInputs(t *testing.T) {
	base := ScenarioSeed(42, "STANDARD_NORMAL")

	if base == ScenarioSeed(43, "STANDARD_NORMAL") {
		t.Error("Different base seed should produce different seed")
	}
	if base == ScenarioSeed(42, "EXTREME_HIGH_HARSH") {
		t.Error("Different scenario should produce different seed")
	}
}

func TestComputeWorkOrderRef(t *testing.T) {
	tests := []struct {
		name       string
		number     string
		terminal   string
		failureDay int
		beta       float64
	}{
		{name: "jakarta", number: "WO/CIP-ENG/2026/001", terminal: "T1", failureDay: 212, beta: 2.0},
		{name: "medan", number: "WO/CIP-ENG/2026/002", terminal: "T3", failureDay: 365, beta: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWorkOrderRef(tt.number, tt.terminal, tt.failureDay, tt.beta)

			decoded, err := base58.Decode(got)
			if err != nil {
				t.Fatalf("reference is not base58: %v", err)
			}
			if len(decoded) != workOrderRefBytes {
				t.Errorf("decoded length = %d, want %d", len(decoded), workOrderRefBytes)
			}

			got2 := ComputeWorkOrderRef(tt.number, tt.terminal, tt.failureDay, tt.beta)
			if got != got2 {
				t.Errorf("ComputeWorkOrderRef() not deterministic: %s != %s", got, got2)
			}
		})
	}
}

func TestComputeWorkOrderRef_DifferentInputs(t *testing.T) {
	base := ComputeWorkOrderRef("WO/1", "T1", 100, 2.0)

	if base == ComputeWorkOrderRef("WO/2", "T1", 100, 2.0) {
		t.Error("Different number should produce different reference")
	}
	if base == ComputeWorkOrderRef("WO/1", "T2", 100, 2.0) {
		t.Error("Different terminal should produce different reference")
	}
	if base == ComputeWorkOrderRef("WO/1", "T1", 101, 2.0) {
		t.Error("Different failure day should produce different reference")
	}
	if base == ComputeWorkOrderRef("WO/1", "T1", 100, 2.1) {
		t.Error("Different beta should produce different reference")
	}
}
