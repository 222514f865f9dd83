// Package multiday - the solve adapter.

package multiday

import (
	"errors"
	"fmt"

	"github.com/jmarca/tsp-multiple-days/routing"
)

// Solve compiles the model, runs the engine and extracts the itinerary.
// The adapter is a pure boundary: it maps engine verdicts onto this
// package's error classes and re-interprets nothing else.
//
// Error mapping:
//
//   - routing.ErrNoFeasibleSolution -> *InfeasibleError (ErrNoSolution
//     class) carrying the day count and budgets;
//   - routing.ErrTimeLimit -> ErrTimeLimit (ErrNoSolution class);
//   - routing parameter errors -> wrapped into ErrConfiguration;
//   - extraction failures -> ErrInternalConsistency (see Extract).
func (m *Model) Solve(p routing.SearchParams) (Itinerary, error) {
	rm, err := m.Compile()
	if err != nil {
		return Itinerary{}, err
	}

	a, err := rm.Solve(p)
	switch {
	case err == nil:
	case errors.Is(err, routing.ErrNoFeasibleSolution):
		return Itinerary{}, &InfeasibleError{Days: m.cfg.Days, Budgets: m.budgets()}
	case errors.Is(err, routing.ErrTimeLimit):
		return Itinerary{}, ErrTimeLimit
	case errors.Is(err, routing.ErrBadParams) || errors.Is(err, routing.ErrUnsupportedStrategy):
		return Itinerary{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	default:
		// Anything else is this package misdriving the engine.
		return Itinerary{}, fmt.Errorf("%w: %v", ErrInternalConsistency, err)
	}

	return m.Extract(a)
}
