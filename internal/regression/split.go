package regression

import (
	"math"
	"math/rand"
)

// TrainTestSplit shuffles indices 0..n-1 with a fixed seed and partitions them.
// The test partition holds ceil(n*testFraction) indices; the rest are train.
func TrainTestSplit(n int, testFraction float64, seed int64) (train, test []int) {
	if n <= 0 {
		return nil, nil
	}

	nTest := int(math.Ceil(float64(n) * testFraction))
	if nTest > n {
		nTest = n
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return perm[nTest:], perm[:nTest]
}
