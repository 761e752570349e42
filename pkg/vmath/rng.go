package vmath

import "math/rand"

// Rng is the single source of randomness an integrator call draws from.
// Every recursive depth in a walk consumes one independent draw from the
// caller's stream (spec §5). The renderer gives each tile its own
// instance, used for every pixel of that tile by one worker at a time.
type Rng interface {
	// Draw returns a uniform sample in [0, 1). Implementations must never
	// return 1.0 exactly, since callers map draws onto half-open ranges
	// (e.g. a light index as u * count).
	Draw() float32
}

// randRng wraps math/rand, following the teacher's pkg/core/sampling.go
// RandomSampler (there wrapping *rand.Rand for Get1D/Get2D/Get3D; here
// narrowed to the single Draw() the core contract needs).
type randRng struct {
	r *rand.Rand
}

// NewRng builds an Rng from the given seed, for use by one goroutine at a
// time.
func NewRng(seed int64) Rng {
	return &randRng{r: rand.New(rand.NewSource(seed))}
}

func (g *randRng) Draw() float32 {
	v := g.r.Float32()
	if v >= 1 {
		v = 0.99999994 // largest float32 strictly below 1
	}
	return v
}
