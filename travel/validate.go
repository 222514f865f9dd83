// Package travel - validation helpers for Matrix construction.
//
// Design principles (package-wide):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(N²) worst case; no hidden allocations beyond the names set.

package travel

import "math"

// validateShape checks that costs is a non-empty square table and
// returns its order N.
//
// Complexity: O(N) time (row-length scan), O(1) space.
func validateShape(costs [][]float64) (int, error) {
	if costs == nil {
		return 0, ErrBadShape
	}
	n := len(costs)
	if n == 0 {
		return 0, ErrBadShape
	}

	var i int
	for i = 0; i < n; i++ {
		if costs[i] == nil {
			return 0, ErrBadShape
		}
		if len(costs[i]) != n {
			return 0, ErrNonSquare
		}
	}

	return n, nil
}

// validateValues performs the full value scan:
//   - diagonal within ±eps of zero and finite,
//   - no negative entries anywhere,
//   - NaN rejected everywhere; ±Inf rejected unless o.allowInf permits
//     +Inf off-diagonal (-Inf is always rejected),
//   - if o.symmetric: |a_ij − a_ji| ≤ eps over the upper triangle.
//
// Complexity: O(N²).
func validateValues(costs [][]float64, n int, o options) error {
	var (
		i, j int
		x    float64
		abs  float64
	)

	// Diagonal: a_ii ≈ 0, finite.
	for i = 0; i < n; i++ {
		x = costs[i][i]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrBadValue
		}
		abs = x
		if abs < 0 {
			abs = -abs
		}
		if abs > o.eps {
			return ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			x = costs[i][j]
			if math.IsNaN(x) {
				return ErrBadValue
			}
			if math.IsInf(x, -1) {
				return ErrBadValue
			}
			if x < 0 {
				return ErrNegativeCost
			}
			if math.IsInf(x, 1) && !o.allowInf {
				return ErrBadValue
			}
		}
	}

	// Symmetry, when requested.
	if o.symmetric {
		var aij, aji float64
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				aij = costs[i][j]
				aji = costs[j][i]
				// +Inf on both sides is symmetric by policy.
				if math.IsInf(aij, 1) && math.IsInf(aji, 1) {
					continue
				}
				abs = aij - aji
				if abs < 0 {
					abs = -abs
				}
				if abs > o.eps || math.IsInf(abs, 0) {
					return ErrAsymmetry
				}
			}
		}
	}

	return nil
}

// validateNames enforces len(names)==n, non-empty strings, uniqueness.
//
// Complexity: O(N) time, O(N) space.
func validateNames(names []string, n int) error {
	if len(names) != n {
		return ErrBadNames
	}
	seen := make(map[string]struct{}, n)

	var (
		i    int
		name string
		ok   bool
	)
	for i = 0; i < n; i++ {
		name = names[i]
		if name == "" {
			return ErrBadNames
		}
		if _, ok = seen[name]; ok {
			return ErrBadNames
		}
		seen[name] = struct{}{}
	}

	return nil
}
