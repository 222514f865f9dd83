// Package routing - search parameter surface.
//
// The knobs mirror what constraint-solver routing engines expose: a
// first-solution construction strategy, an improvement metaheuristic,
// and a soft wall-clock limit. Defaults favor determinism and quality:
// cheapest-arc construction plus greedy 2-opt/relocate descent.

package routing

import "time"

// FirstSolutionStrategy selects how the initial feasible visiting order
// is constructed before improvement and exact search.
type FirstSolutionStrategy int

const (
	// PathCheapestArc extends the path from its start by always taking
	// the cheapest arc to an unvisited node (deterministic nearest
	// neighbor; index tiebreak).
	PathCheapestArc FirstSolutionStrategy = iota

	// CheapestInsertion grows the path by repeatedly inserting the
	// node/position pair with the smallest cost increase.
	CheapestInsertion
)

// Metaheuristic selects the local-search phase applied to the seed
// solution before branch-and-bound.
type Metaheuristic int

const (
	// GreedyDescent runs first-improvement relocate moves (plus segment
	// reversal when the cost structure is symmetric) until a local
	// optimum; every accepted move must keep the assignment feasible.
	GreedyDescent Metaheuristic = iota

	// NoMetaheuristic skips the improvement phase.
	NoMetaheuristic
)

// DefaultEps is the strict-improvement tolerance: a candidate replaces
// the incumbent only when it is better by more than Eps.
const DefaultEps = 1e-9

// SearchParams bundles all search knobs. The zero value is NOT the
// default; use DefaultSearchParams.
type SearchParams struct {
	// FirstSolution picks the construction heuristic for the seed.
	FirstSolution FirstSolutionStrategy

	// Metaheuristic picks the improvement phase.
	Metaheuristic Metaheuristic

	// TimeLimit is the soft wall-clock budget for the whole solve.
	// 0 means unlimited. The engine checks the deadline sparsely, so
	// overruns are bounded by a few thousand node expansions.
	TimeLimit time.Duration

	// Seed drives the optional shuffled neighborhood scan; 0 selects the
	// fixed default stream. Identical seeds give identical results.
	Seed int64

	// ShuffleNeighborhood randomizes (deterministically, from Seed) the
	// scan order of local-search candidates.
	ShuffleNeighborhood bool

	// Eps is the strict-improvement tolerance (>= 0).
	Eps float64
}

// DefaultSearchParams returns the documented defaults.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		FirstSolution: PathCheapestArc,
		Metaheuristic: GreedyDescent,
		TimeLimit:     0,
		Seed:          0,
		Eps:           DefaultEps,
	}
}

// validateParams checks internal consistency of SearchParams.
//
// Complexity: O(1).
func validateParams(p SearchParams) error {
	if p.TimeLimit < 0 {
		return ErrBadParams
	}
	if p.Eps < 0 {
		return ErrBadParams
	}
	switch p.FirstSolution {
	case PathCheapestArc, CheapestInsertion:
	default:
		return ErrUnsupportedStrategy
	}
	switch p.Metaheuristic {
	case GreedyDescent, NoMetaheuristic:
	default:
		return ErrUnsupportedStrategy
	}

	return nil
}
