// Package routing: sentinel error set.
// Every message is prefixed with "routing: ..."; tests match with
// errors.Is. No fmt.Errorf in hot paths.

package routing

import "errors"

var (
	// ErrNodeCount is returned when a model is created with fewer than
	// one node.
	ErrNodeCount = errors.New("routing: node count must be >= 1")

	// ErrVehicleCount is returned when a model is created with fewer
	// than one vehicle.
	ErrVehicleCount = errors.New("routing: vehicle count must be >= 1")

	// ErrNilCost signals a nil cost or transit callback.
	ErrNilCost = errors.New("routing: nil cost callback")

	// ErrCostUnset signals Solve on a model without an arc cost callback.
	ErrCostUnset = errors.New("routing: arc cost callback not set")

	// ErrBadCost signals a NaN or negative value produced by a cost or
	// transit callback (+Inf is legal and means "no arc").
	ErrBadCost = errors.New("routing: cost callback produced NaN or negative")

	// ErrBadCapacity signals a dimension capacity vector of the wrong
	// length, or a NaN/negative capacity (+Inf means "unlimited").
	ErrBadCapacity = errors.New("routing: invalid dimension capacities")

	// ErrVarOutOfRange signals a boundary variable referencing a vehicle
	// outside [0..V-1].
	ErrVarOutOfRange = errors.New("routing: boundary variable out of range")

	// ErrPinOutOfRange signals an anchor pin with a vehicle or node index
	// outside the model.
	ErrPinOutOfRange = errors.New("routing: pin out of range")

	// ErrUnsupportedTopology signals equality links that do not chain the
	// vehicles into a single sequence, or pins on interior chain
	// boundaries.
	ErrUnsupportedTopology = errors.New("routing: unsupported constraint topology")

	// ErrUnsupportedStrategy signals an unknown first-solution strategy
	// or metaheuristic in SearchParams.
	ErrUnsupportedStrategy = errors.New("routing: unsupported search strategy")

	// ErrBadParams signals a negative time limit or epsilon.
	ErrBadParams = errors.New("routing: invalid search parameters")

	// ErrNoFeasibleSolution is returned when the exhaustive search proves
	// that no assignment satisfies all constraints.
	ErrNoFeasibleSolution = errors.New("routing: no feasible assignment exists")

	// ErrTimeLimit is returned when the time budget expires before any
	// feasible assignment was found. A budget expiry after an incumbent
	// was found returns the incumbent instead.
	ErrTimeLimit = errors.New("routing: time limit exceeded")
)
