// Package trajectory - RNG policy shared by the sampling stages.
//
// This file centralizes deterministic random generation for the design
// generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical designs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging from random helpers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; give each concurrent caller its own stream.
package trajectory

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for the whole sampling
// pipeline. Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed
// verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
