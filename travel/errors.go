// Package travel: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// travel package. All constructors and accessors MUST return these
// sentinels and tests MUST check them via errors.Is. Nothing here panics
// on user-triggered conditions.

package travel

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "travel: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still
// match with errors.Is.

var (
	// ErrBadShape is returned when the cost table is nil, empty, or ragged.
	ErrBadShape = errors.New("travel: invalid cost table shape")

	// ErrNonSquare signals that the cost table is not N×N.
	ErrNonSquare = errors.New("travel: cost table is not square")

	// ErrOutOfRange indicates that a location index is outside [0..N-1].
	ErrOutOfRange = errors.New("travel: location index out of range")

	// ErrNonZeroDiagonal signals a diagonal entry outside ±eps of zero.
	ErrNonZeroDiagonal = errors.New("travel: diagonal cost not zero within eps")

	// ErrNegativeCost signals a negative pairwise cost.
	ErrNegativeCost = errors.New("travel: negative cost")

	// ErrBadValue signals NaN (always) or ±Inf (when infinite costs are
	// not permitted) anywhere in the table.
	ErrBadValue = errors.New("travel: NaN or Inf cost encountered")

	// ErrAsymmetry signals a_ij != a_ji within eps when WithSymmetric()
	// was requested.
	ErrAsymmetry = errors.New("travel: cost table is not symmetric within eps")

	// ErrBadNames signals display names of the wrong count, empty, or
	// duplicated.
	ErrBadNames = errors.New("travel: invalid location names")
)
