// Package routing - reduction of equality links and pins to the
// supported topology: a single chain of vehicles.
//
// The multi-day compiler in package multiday always emits the chain
// End(d) == Start(d+1); this file verifies the general model actually
// has that shape (in any vehicle order) and extracts it.

package routing

// chain describes the resolved vehicle topology.
type chain struct {
	// order lists vehicles in traversal order: leg d is driven by
	// vehicle order[d].
	order []int

	// startPin is the node pinned to the chain head's start, -1 if free.
	startPin int

	// endPin is the node pinned to the chain tail's end, -1 if free.
	endPin int

	// cycle is true when head start and tail end are pinned to the same
	// node: the visiting order closes back on itself.
	cycle bool
}

// resolveChain validates the equality links and pins of m and returns
// the chain. Supported shape:
//
//   - every link joins one vehicle's END to another vehicle's START
//     (either argument order);
//   - each boundary participates in at most one link, no self-links;
//   - the links connect all V vehicles into exactly one sequence
//     (V-1 links; V == 1 with no links is the trivial chain);
//   - pins are only honored on the head start and tail end; a pin on an
//     equality-linked boundary is a contradiction in the making and is
//     rejected.
//
// Errors: ErrUnsupportedTopology.
//
// Complexity: O(V + L) time, O(V) space.
func resolveChain(m *Model) (chain, error) {
	var (
		v       = m.vehicles
		succ    = make([]int, v) // succ[a] = vehicle whose start joins a's end
		pred    = make([]int, v)
		i, a, b int
		lk      equality
	)
	for i = 0; i < v; i++ {
		succ[i], pred[i] = -1, -1
	}

	// Normalize each link to (end of a) == (start of b).
	for _, lk = range m.links {
		switch {
		case lk.a.Boundary == EndBoundary && lk.b.Boundary == StartBoundary:
			a, b = lk.a.Vehicle, lk.b.Vehicle
		case lk.a.Boundary == StartBoundary && lk.b.Boundary == EndBoundary:
			a, b = lk.b.Vehicle, lk.a.Vehicle
		default:
			// end==end or start==start cannot express continuity.
			return chain{}, ErrUnsupportedTopology
		}
		if a == b {
			return chain{}, ErrUnsupportedTopology
		}
		if succ[a] != -1 || pred[b] != -1 {
			return chain{}, ErrUnsupportedTopology
		}
		succ[a] = b
		pred[b] = a
	}

	// Exactly V-1 links chain V vehicles; anything else leaves either a
	// second component or a vehicle cycle, both unsupported.
	if len(m.links) != v-1 {
		return chain{}, ErrUnsupportedTopology
	}

	// Locate the unique head (no predecessor).
	var head = -1
	for i = 0; i < v; i++ {
		if pred[i] == -1 {
			if head != -1 {
				return chain{}, ErrUnsupportedTopology
			}
			head = i
		}
	}
	if head == -1 {
		// All vehicles have predecessors: a vehicle cycle.
		return chain{}, ErrUnsupportedTopology
	}

	// Walk the chain; a revisit or short walk means a malformed shape.
	order := make([]int, 0, v)
	for i = head; i != -1; i = succ[i] {
		order = append(order, i)
		if len(order) > v {
			return chain{}, ErrUnsupportedTopology
		}
	}
	if len(order) != v {
		return chain{}, ErrUnsupportedTopology
	}

	// Pins: interior boundaries are controlled by the equality links,
	// so only the outer two may be anchored.
	tail := order[v-1]
	for i = 0; i < v; i++ {
		if i != head && m.starts[i] != -1 {
			return chain{}, ErrUnsupportedTopology
		}
		if i != tail && m.ends[i] != -1 {
			return chain{}, ErrUnsupportedTopology
		}
	}

	c := chain{order: order, startPin: m.starts[head], endPin: m.ends[tail]}
	c.cycle = c.startPin != -1 && c.startPin == c.endPin

	return c, nil
}
