// Package routing - deterministic RNG utilities for the search.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources.
//   - Performance: O(1) helpers, O(n) shuffles, nothing hidden.
//
// math/rand.Rand is NOT goroutine-safe; each Solve call builds its own
// stream, so concurrent solves never share one.

package routing

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass
// seed==0. Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with a SplitMix64-style finalizer, giving independent
// substreams without correlation.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a
// using rng. A nil rng falls back to the default deterministic stream.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
