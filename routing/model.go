// Package routing - model handle: nodes, vehicles, cost callback,
// dimensions, boundary variables, anchor pins.
//
// A Model is cheap mutable configuration; all heavy work happens in
// Solve. Models are not safe for concurrent mutation, but a fully built
// model may be solved concurrently since Solve never mutates it.

package routing

import "math"

// CostFunc evaluates the cost of the directed arc from -> to.
// Contract: deterministic, non-negative, NaN-free; +Inf means the arc
// does not exist.
type CostFunc func(from, to int) float64

// Boundary distinguishes the two node-selection variables of a vehicle
// route: where it starts and where it ends.
type Boundary int

const (
	// StartBoundary selects a vehicle's first node.
	StartBoundary Boundary = iota
	// EndBoundary selects a vehicle's last node.
	EndBoundary
)

// Var is a route-boundary node-selection variable, addressed by vehicle
// and boundary side. Obtain via (*Model).StartVar / (*Model).EndVar.
type Var struct {
	Vehicle  int
	Boundary Boundary
}

// Dimension is an accumulated resource tracked along each route and
// capped per vehicle. The accumulator resets at each vehicle's start;
// the hop between equality-linked vehicles accumulates nothing.
type Dimension struct {
	name    string
	transit CostFunc
	caps    []float64 // one capacity per vehicle; +Inf = unlimited
}

// Name returns the dimension's identifier.
func (d *Dimension) Name() string { return d.name }

// equality records one add_equality_constraint call.
type equality struct {
	a, b Var
}

// Model is the engine's model handle.
// The zero value is not usable; construct via NewModel.
type Model struct {
	nodes    int
	vehicles int

	arc    CostFunc
	dims   []*Dimension
	starts []int // pinned start node per vehicle, -1 when free
	ends   []int // pinned end node per vehicle, -1 when free
	links  []equality
}

// NewModel creates a model handle for nodeCount nodes and vehicleCount
// vehicles. Both must be >= 1; relations between the two (e.g. more
// vehicles than nodes) are a solve-time feasibility question, not a
// construction error.
//
// Complexity: O(V).
func NewModel(nodeCount, vehicleCount int) (*Model, error) {
	if nodeCount < 1 {
		return nil, ErrNodeCount
	}
	if vehicleCount < 1 {
		return nil, ErrVehicleCount
	}

	m := &Model{
		nodes:    nodeCount,
		vehicles: vehicleCount,
		starts:   make([]int, vehicleCount),
		ends:     make([]int, vehicleCount),
	}
	var v int
	for v = 0; v < vehicleCount; v++ {
		m.starts[v] = -1
		m.ends[v] = -1
	}

	return m, nil
}

// NodeCount returns the number of nodes in the model.
func (m *Model) NodeCount() int { return m.nodes }

// VehicleCount returns the number of vehicles in the model.
func (m *Model) VehicleCount() int { return m.vehicles }

// SetArcCost installs the pairwise cost callback used as the search
// objective.
func (m *Model) SetArcCost(fn CostFunc) error {
	if fn == nil {
		return ErrNilCost
	}
	m.arc = fn

	return nil
}

// AddDimension registers an accumulated resource. transit evaluates the
// per-arc contribution; capacities holds one hard upper bound per
// vehicle (+Inf for unlimited).
//
// Complexity: O(V).
func (m *Model) AddDimension(name string, transit CostFunc, capacities []float64) (*Dimension, error) {
	if transit == nil {
		return nil, ErrNilCost
	}
	if len(capacities) != m.vehicles {
		return nil, ErrBadCapacity
	}

	var (
		v int
		c float64
	)
	for v = 0; v < m.vehicles; v++ {
		c = capacities[v]
		if math.IsNaN(c) || c < 0 {
			return nil, ErrBadCapacity
		}
	}

	caps := make([]float64, m.vehicles)
	copy(caps, capacities)
	d := &Dimension{name: name, transit: transit, caps: caps}
	m.dims = append(m.dims, d)

	return d, nil
}

// StartVar returns the node-selection variable for vehicle v's start.
func (m *Model) StartVar(v int) Var { return Var{Vehicle: v, Boundary: StartBoundary} }

// EndVar returns the node-selection variable for vehicle v's end.
func (m *Model) EndVar(v int) Var { return Var{Vehicle: v, Boundary: EndBoundary} }

// AddEquality asserts that two boundary variables resolve to the same
// physical node. The supported topology (a single vehicle chain) is
// verified at Solve; here we only check variable sanity.
func (m *Model) AddEquality(a, b Var) error {
	if a.Vehicle < 0 || a.Vehicle >= m.vehicles || b.Vehicle < 0 || b.Vehicle >= m.vehicles {
		return ErrVarOutOfRange
	}
	m.links = append(m.links, equality{a: a, b: b})

	return nil
}

// PinStart anchors vehicle v's start to a fixed node.
func (m *Model) PinStart(v, node int) error {
	if v < 0 || v >= m.vehicles || node < 0 || node >= m.nodes {
		return ErrPinOutOfRange
	}
	m.starts[v] = node

	return nil
}

// PinEnd anchors vehicle v's end to a fixed node.
func (m *Model) PinEnd(v, node int) error {
	if v < 0 || v >= m.vehicles || node < 0 || node >= m.nodes {
		return ErrPinOutOfRange
	}
	m.ends[v] = node

	return nil
}

// Assignment is the raw solver output: for every vehicle, its node
// sequence in visiting order (boundary nodes included; a node shared
// through an equality link appears as the last element of one route and
// the first of the next), plus the total arc cost.
type Assignment struct {
	Routes [][]int
	Cost   float64
}
