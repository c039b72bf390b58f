package data

import "math/rand/v2"

// Source supplies independent standard-normal draws.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	NormFloat64() float64
}

// NewSeededSource returns a reproducible source. Two sources built from the
// same seed produce identical draws across runs and platforms.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewEntropySource returns a source seeded from the runtime's random state.
func NewEntropySource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Normals draws n standard-normal samples. n <= 0 yields an empty slice.
func Normals(src Source, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = src.NormFloat64()
	}
	return out
}
