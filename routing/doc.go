// Package routing provides a generic constraint-based routing engine:
// a node graph, a pairwise cost callback, per-vehicle dimension
// (resource) capacities, and equality constraints between route-boundary
// node-selection variables.
//
// Capability surface (any engine offering the same set is
// substitutable for this one):
//
//   - NewModel(nodeCount, vehicleCount) — create a model handle.
//   - (*Model).SetArcCost(fn)          — the cost callback fn(i,j).
//   - (*Model).AddDimension(...)       — an accumulated resource capped
//     per vehicle, reset at each vehicle's start.
//   - (*Model).AddEquality(a, b)       — equality between two boundary
//     node variables (StartVar/EndVar).
//   - (*Model).PinStart / PinEnd       — anchor a boundary to a node.
//   - (*Model).Solve(SearchParams)     — run the search, return an
//     Assignment or a no-solution sentinel.
//
// Semantics:
//
//   - Every node is visited exactly once across all vehicles; a node
//     shared through an equality constraint ends one route and starts
//     the next without being a second visit.
//   - Crossing from a vehicle to its equality-linked successor
//     accumulates nothing on any dimension.
//   - Equality links must chain the vehicles into a single sequence;
//     other topologies return ErrUnsupportedTopology. When the chain
//     tail's end is pinned to the same node as the chain head's pinned
//     start, the visiting order closes into a cycle.
//
// Search is deterministic: a first-solution heuristic seeds an upper
// bound, an optional local-search descent polishes it, and exact
// depth-first branch-and-bound (admissible lower bound, ascending-cost
// branching, sparse deadline checks) runs until optimality or the soft
// wall-clock budget expires. Identical model and parameters always
// produce identical output.
//
// This package never logs and never panics on user input; all failures
// are sentinel errors matched with errors.Is.
package routing
