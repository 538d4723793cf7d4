// Package ga - RNG policy shared by every operator.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Injection: operators draw only from a caller-supplied Source; there is
//     no hidden time-based randomness anywhere in the package.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Source across goroutines.
package ga

import "math/rand"

// Source is the randomness consumed by the GA operators.
// *math/rand.Rand satisfies it.
//
//	Intn(n)   – uniform int in [0, n); n > 0.
//	Float64() – uniform float in [0, 1).
type Source interface {
	Intn(n int) int
	Float64() float64
}

var _ Source = (*rand.Rand)(nil)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sourceFor resolves the Source an Evolver will use: an injected Rand wins,
// otherwise a fresh stream is derived from opts.Seed.
func sourceFor(opts Options) Source {
	if opts.Rand != nil {
		return opts.Rand
	}

	return rngFromSeed(opts.Seed)
}
