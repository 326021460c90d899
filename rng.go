package optictrace

import "math/rand/v2"

// Rng is the random source capability consumed by HalfMirror dispatch.
// It is injected rather than drawn from a process-wide generator so
// that a parallel simulation run stays reproducible regardless of how
// goroutines interleave: each ray gets its own Rng seeded
// deterministically from the run's base seed and the ray's index.
type Rng interface {
	// NextUnit returns a value uniformly distributed in [0, 1).
	NextUnit() float64
}

// pcgRng is the default Rng, backed by math/rand/v2's PCG source.
type pcgRng struct {
	r *rand.Rand
}

// NewRng returns the default per-ray Rng, seeded deterministically from
// seed and rayIndex so that two runs with the same seed produce
// identical HalfMirror outcomes regardless of execution order.
func NewRng(seed uint64, rayIndex int) Rng {
	return &pcgRng{r: rand.New(rand.NewPCG(seed, uint64(rayIndex)))}
}

func (p *pcgRng) NextUnit() float64 {
	return p.r.Float64()
}
