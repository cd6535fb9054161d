package idhash

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// workOrderRefBytes is the hash prefix length encoded into a reference.
const workOrderRefBytes = 12

// ComputeWorkOrderRef computes a deterministic short reference for a work order.
// Formula: base58(SHA256(number|terminal|failure_day|beta)[:12])
func ComputeWorkOrderRef(
	number string,
	terminal string,
	failureDay int,
	beta float64,
) string {
	data := fmt.Sprintf("%s|%s|%d|%.4f",
		number,
		terminal,
		failureDay,
		beta,
	)

	hash := sha256.Sum256([]byte(data))
	return base58.Encode(hash[:workOrderRefBytes])
}
