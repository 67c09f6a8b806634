// Package rng holds the deterministic random sources used by the simulation.
package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Source yields random bits for a given agent index. Implementations must
// give every index its own sequence so that the draws an agent sees do not
// depend on how the population is split across workers.
type Source interface {
	Uint64(agent int) uint64
}

// Streams is a Source with one PCG stream per agent, all derived from a
// single seed. Distinct indices may be drawn from concurrently; a single
// index must not be.
type Streams struct {
	pcg []rand.PCG
}

// NewStreams allocates n streams seeded from seed.
func NewStreams(seed int64, n int) *Streams {
	s := &Streams{pcg: make([]rand.PCG, n)}
	s.Seed(seed)
	return s
}

// Seed resets every stream. Stream i is PCG(seed, i+1); sequence 0 belongs
// to NewRNG so placement draws never alias agent 0.
func (s *Streams) Seed(seed int64) {
	for i := range s.pcg {
		s.pcg[i].Seed(uint64(seed), uint64(i)+1)
	}
}

// Len returns the number of streams.
func (s *Streams) Len() int { return len(s.pcg) }

// Uint64 draws the next value from stream agent.
func (s *Streams) Uint64(agent int) uint64 {
	return s.pcg[agent].Uint64()
}

// Unit maps 64 random bits onto [0, 1) using the top 53 bits.
func Unit(bits uint64) float64 {
	return float64(bits>>11) * 0x1p-53
}
