package bigmath

import "math/rand"

// RandSource is the external collaborator consumed by BigInt's random
// constructors. The library owns no global generator (§5); callers inject
// one, which also makes deterministic tests straightforward.
type RandSource interface {
	// Uint32 returns a uniformly distributed pseudo-random 32-bit word.
	Uint32() uint32
}

// mathRandSource adapts *rand.Rand to RandSource.
type mathRandSource struct {
	r *rand.Rand
}

// NewRandSource wraps a standard library *rand.Rand as a RandSource.
func NewRandSource(r *rand.Rand) RandSource {
	return mathRandSource{r: r}
}

// Uint32 implements RandSource.
func (m mathRandSource) Uint32() uint32 {
	return m.r.Uint32()
}
