package idhash

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// ScenarioSeed derives a deterministic per-scenario seed.
// Formula: SHA256(base_seed|scenario_name), first 8 bytes big-endian, sign bit cleared.
// Independent of scenario execution order, so parallel runs reproduce sequential ones.
func ScenarioSeed(baseSeed int64, scenarioName string) int64 {
	data := fmt.Sprintf("%d|%s", baseSeed, scenarioName)

	hash := sha256.Sum256([]byte(data))
	return int64(binary.BigEndian.Uint64(hash[:8]) &^ (1 << 63))
}
