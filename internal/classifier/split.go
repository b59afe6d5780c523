package classifier

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Split holds row indices for the training and held-out partitions.
type Split struct {
	Train   []int
	HeldOut []int
}

// TrainTestSplit shuffles n row indices with a PCG source seeded by seed and
// reserves ceil(n*heldOut) of them. At least one training row is always kept.
// The same (n, heldOut, seed) always yields the same partition.
func TrainTestSplit(n int, heldOut float64, seed int64) (Split, error) {
	if n <= 0 {
		return Split{}, fmt.Errorf("split: need at least one row, got %d", n)
	}
	if heldOut < 0 || heldOut >= 1 {
		return Split{}, fmt.Errorf("split: held-out fraction must be in [0, 1), got %g", heldOut)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	nHeld := int(math.Ceil(float64(n) * heldOut))
	if nHeld > n-1 {
		nHeld = n - 1
	}
	return Split{
		HeldOut: perm[:nHeld],
		Train:   perm[nHeld:],
	}, nil
}
