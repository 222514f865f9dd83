// Package travel: Matrix is the immutable, dense Location Graph.
//
// Storage is a flat row-major float64 slice for cache friendliness; the
// backing data is copied out of the caller's slices at construction and
// never exposed, so a Matrix is safe to share across concurrent solver
// runs without locking.

package travel

// Location is one node of the Location Graph: its index into the cost
// table plus optional display metadata. Immutable once loaded.
type Location struct {
	Index int
	Name  string
}

// Matrix is a validated dense N×N cost table.
// The zero value is not usable; construct via NewMatrix.
type Matrix struct {
	n     int       // number of locations
	data  []float64 // flat row-major backing storage, length n*n
	names []string  // optional display names, nil or length n
}

// NewMatrix validates and copies costs into an immutable Matrix.
//
// Stage 1 - shape: non-nil, non-empty, square (every row length == N).
// Stage 2 - values: diagonal ≈ 0, no negatives, no NaN, Inf per policy,
// symmetry when requested (see validate.go).
// Stage 3 - names: optional metadata checked for count/uniqueness.
//
// Errors: strict sentinels from errors.go.
//
// Complexity: O(N²) time and space.
func NewMatrix(costs [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape.
	n, err := validateShape(costs)
	if err != nil {
		return nil, err
	}

	// Stage 2: values (diagonal, negativity, NaN/Inf policy, symmetry).
	if err = validateValues(costs, n, o); err != nil {
		return nil, err
	}

	// Stage 3: optional names.
	if o.names != nil {
		if err = validateNames(o.names, n); err != nil {
			return nil, err
		}
	}

	// Copy into flat storage; the input remains caller-owned.
	var (
		data = make([]float64, n*n)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data[i*n+j] = costs[i][j]
		}
	}

	var names []string
	if o.names != nil {
		names = make([]string, n)
		copy(names, o.names)
	}

	return &Matrix{n: n, data: data, names: names}, nil
}

// Len returns the number of locations N.
//
// Complexity: O(1).
func (m *Matrix) Len() int { return m.n }

// At returns the cost of traveling from location i to location j.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.n+j], nil
}

// CostFn returns a pairwise cost callback over the matrix data without
// per-call bounds checks, suitable as a solver-engine arc evaluator.
//
// Contract: callers must only pass indices in [0..N-1]; engines obtain
// indices from their own node set, which NewMatrix-validated models keep
// in range by construction. Use At when the contract cannot be met.
//
// Complexity: O(1) per call, zero allocations after the closure.
func (m *Matrix) CostFn() func(from, to int) float64 {
	var (
		n    = m.n
		data = m.data
	)

	return func(from, to int) float64 { return data[from*n+to] }
}

// Name returns the display name of location i, or "" when no names were
// attached or i is out of range.
//
// Complexity: O(1).
func (m *Matrix) Name(i int) string {
	if m.names == nil || i < 0 || i >= m.n {
		return ""
	}

	return m.names[i]
}

// Location returns the Location record for index i.
//
// Complexity: O(1).
func (m *Matrix) Location(i int) (Location, error) {
	if i < 0 || i >= m.n {
		return Location{}, ErrOutOfRange
	}

	return Location{Index: i, Name: m.Name(i)}, nil
}

// Names returns a copy of the display names, or nil when none were set.
//
// Complexity: O(N).
func (m *Matrix) Names() []string {
	if m.names == nil {
		return nil
	}
	out := make([]string, m.n)
	copy(out, m.names)

	return out
}
