package biology

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RandomSource supplies uniform floats in [lo, hi).
type RandomSource interface {
	Between(lo, hi float64) float64
}

// Rand is the default RandomSource. It is not safe for concurrent use.
type Rand struct {
	rng *rand.Rand
}

// NewRand returns a source whose sequence is fully determined by seed.
func NewRand(seed int64) *Rand {
	return &Rand{rng: seededRNG(seed)}
}

func (r *Rand) Between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible catches.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
