// Package multiday: error taxonomy.
//
// Three classes, each a sentinel; specific causes wrap their class so
// callers branch with errors.Is on the class and inspect the cause
// message (or InfeasibleError fields) when they need detail.

package multiday

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the class of all malformed-input errors from
	// NewModel and of invalid search parameters passed to Solve.
	ErrConfiguration = errors.New("multiday: invalid configuration")

	// ErrNoSolution is the class returned when no itinerary satisfies
	// the constraints, either proven (InfeasibleError) or because the
	// time budget ran out first (ErrTimeLimit).
	ErrNoSolution = errors.New("multiday: no solution found")

	// ErrInternalConsistency is returned when the extractor's
	// re-verification finds an itinerary violating an invariant the
	// engine was supposed to enforce. It indicates a defect in this
	// module, never bad caller input.
	ErrInternalConsistency = errors.New("multiday: internal consistency check failed")
)

// Specific configuration causes. All satisfy
// errors.Is(err, ErrConfiguration).
var (
	ErrNilMatrix   = fmt.Errorf("%w: nil travel matrix", ErrConfiguration)
	ErrDayCount    = fmt.Errorf("%w: day count must be between 1 and the location count", ErrConfiguration)
	ErrBadBudget   = fmt.Errorf("%w: budgets must be finite and non-negative", ErrConfiguration)
	ErrBudgetCount = fmt.Errorf("%w: per-day budget count must equal the day count", ErrConfiguration)
	ErrOriginRange = fmt.Errorf("%w: origin out of range", ErrConfiguration)
	ErrBadAnchor   = fmt.Errorf("%w: unknown anchor mode", ErrConfiguration)
)

// ErrTimeLimit reports that the search budget expired before any
// feasible itinerary was found. Satisfies errors.Is(err, ErrNoSolution).
var ErrTimeLimit = fmt.Errorf("%w: time limit exceeded", ErrNoSolution)

// InfeasibleError reports a proven infeasibility: the exhaustive search
// established that no itinerary with these parameters exists. It
// satisfies errors.Is(err, ErrNoSolution) and carries the parameters so
// callers probing several day counts can report what failed.
type InfeasibleError struct {
	Days    int
	Budgets []float64
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("multiday: no solution found: no feasible itinerary for %d day(s) with budgets %v", e.Days, e.Budgets)
}

// Unwrap ties the error into the ErrNoSolution class.
func (e *InfeasibleError) Unwrap() error { return ErrNoSolution }
