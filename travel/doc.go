// Package travel holds the Location Graph: the immutable set of
// locations and their pairwise travel costs.
//
// The central type is Matrix — a dense, row-major N×N float64 cost
// table, validated once at construction and never mutated afterwards:
//
//   - square shape, N ≥ 1;
//   - diagonal ≈ 0 (cost of staying put is zero);
//   - no negative costs, no NaN;
//   - ±Inf rejected by default; WithInfiniteCosts() permits +Inf as
//     "unreachable" for instances with missing edges;
//   - WithSymmetric() additionally enforces a_ij == a_ji within eps;
//   - WithNames(...) attaches optional display metadata (unique,
//     non-empty, one per location).
//
// All validation failures are reported through the sentinel errors in
// errors.go and matched with errors.Is; functions in this package never
// panic on user input and never log.
package travel
