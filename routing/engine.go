// Package routing - the search engine behind (*Model).Solve.
//
// With the vehicles chained by the continuity equalities, an assignment
// is one global visiting order (an open path, or a cycle when the chain
// tail returns to the pinned head start) plus a feasible split of its
// arcs into legs. The search therefore enumerates visiting orders via
// depth-first branch-and-bound and keeps the split frontier (split.go)
// alongside to prune capacity-infeasible prefixes exactly:
//
//  1. Prefetch the cost callback and every dimension's transit callback
//     into dense buffers; strict sentinels on NaN/negative values.
//  2. Seed an incumbent with the configured first-solution strategy,
//     polished by the metaheuristic (localsearch.go). A good upper
//     bound dramatically strengthens pruning; correctness never depends
//     on it.
//  3. DFS with deterministic branching: from the current last node, try
//     successors in ascending arc cost (index tiebreak). Admissible
//     lower bound: cost so far + sum of the cheapest incoming arc of
//     every unvisited node (+ the cheapest return into the origin in
//     cycle mode). Prune when bound >= incumbent - eps.
//  4. Soft time limit: rare deadline checks (every 1024 node events)
//     keep overhead negligible. Expiry with an incumbent returns the
//     incumbent; expiry without one returns ErrTimeLimit.
//
// Worst case is exponential in the node count (exact search); practical
// speed comes from the bound, the capacity frontier, and the seed.

package routing

import (
	"math"
	"sort"
	"time"
)

// roundScale stabilizes reported costs to 1e-9 to avoid cross-platform
// floating-point drift without affecting optimality.
const roundScale = 1e9

func round1e9(x float64) float64 { return math.Round(x*roundScale) / roundScale }

// engine holds all search data and policies for one Solve call.
// A dedicated struct (instead of closures) keeps hot-path state
// predictable and the pieces independently testable.
type engine struct {
	n    int   // node count
	legs int   // chained vehicle count
	ch   chain // resolved topology

	w   []float64   // arc costs, w[u*n+v]
	tb  [][]float64 // per-dimension transit buffers, same layout
	sp  *splitter
	tsc []float64 // scratch transit vector, len == dimensions

	symmetric bool // enables reversal moves in local search
	eps       float64

	useDeadline bool
	deadline    time.Time
	steps       int
	expired     bool

	minIn    []float64 // cheapest incoming arc per node (excluding self)
	sumMinIn float64   // sum of minIn over unvisited nodes
	nbr      [][]int   // per node: successors sorted by ascending cost

	visited []bool
	path    []int

	bestPath []int
	bestCost float64
	found    bool
}

// arcCount returns the total number of arcs a complete assignment
// consumes: n-1 path arcs, plus the closing arc in cycle mode.
func (e *engine) arcCount() int {
	if e.ch.cycle {
		return e.n
	}

	return e.n - 1
}

// at is the fast accessor into the dense cost buffer.
func (e *engine) at(u, v int) float64 { return e.w[u*e.n+v] }

// transitVec fills the scratch vector with every dimension's transit
// for arc u->v. The caller must not retain the slice across calls.
func (e *engine) transitVec(u, v int) []float64 {
	var k int
	for k = 0; k < len(e.tb); k++ {
		e.tsc[k] = e.tb[k][u*e.n+v]
	}

	return e.tsc
}

// deadlineCheck performs a rare deadline test (every 1024 node events).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return e.expired
	}
	if time.Now().After(e.deadline) {
		e.expired = true
	}

	return e.expired
}

// prefetch loads the arc cost and dimension transits into dense buffers
// with strict sentinel semantics: NaN and negative values are rejected,
// +Inf is allowed and means "no arc".
func (e *engine) prefetch(m *Model) error {
	var (
		u, v int
		x    float64
	)
	e.w = make([]float64, e.n*e.n)
	for u = 0; u < e.n; u++ {
		for v = 0; v < e.n; v++ {
			x = m.arc(u, v)
			if math.IsNaN(x) || x < 0 {
				return ErrBadCost
			}
			e.w[u*e.n+v] = x
		}
	}

	e.tb = make([][]float64, len(m.dims))
	var k int
	for k = 0; k < len(m.dims); k++ {
		buf := make([]float64, e.n*e.n)
		for u = 0; u < e.n; u++ {
			for v = 0; v < e.n; v++ {
				x = m.dims[k].transit(u, v)
				if math.IsNaN(x) || x < 0 {
					return ErrBadCost
				}
				buf[u*e.n+v] = x
			}
		}
		e.tb[k] = buf
	}
	e.tsc = make([]float64, len(m.dims))

	// Symmetry of the objective decides which local-search moves are
	// sound (segment reversal preserves interior cost only then).
	e.symmetric = true
	for u = 0; u < e.n && e.symmetric; u++ {
		for v = u + 1; v < e.n; v++ {
			if e.at(u, v) != e.at(v, u) {
				e.symmetric = false
				break
			}
		}
	}

	return nil
}

// precompute builds minIn and the deterministic branching order.
// A node with no finite incoming arc is unreachable; the bound turns
// +Inf there into immediate pruning of branches that still owe it.
func (e *engine) precompute() {
	var (
		u, v int
		inf  = math.Inf(1)
		mi   float64
	)
	e.minIn = make([]float64, e.n)
	for v = 0; v < e.n; v++ {
		mi = inf
		for u = 0; u < e.n; u++ {
			if u != v && e.at(u, v) < mi {
				mi = e.at(u, v)
			}
		}
		e.minIn[v] = mi
	}

	e.nbr = make([][]int, e.n)
	for u = 0; u < e.n; u++ {
		row := make([]int, 0, e.n-1)
		for v = 0; v < e.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		no := neighborOrder{u: u, row: row, e: e}
		sort.Sort(&no)
		e.nbr[u] = no.row
	}
}

// neighborOrder sorts a successor row by ascending arc cost with index
// tiebreak, keeping branching fully deterministic.
type neighborOrder struct {
	u   int
	row []int
	e   *engine
}

func (no neighborOrder) Len() int { return len(no.row) }
func (no neighborOrder) Less(i, j int) bool {
	vi, vj := no.row[i], no.row[j]
	wi, wj := no.e.at(no.u, vi), no.e.at(no.u, vj)
	if wi == wj {
		return vi < vj
	}

	return wi < wj
}
func (no *neighborOrder) Swap(i, j int) { no.row[i], no.row[j] = no.row[j], no.row[i] }

// lowerBound is admissible: every unvisited node still needs one
// incoming arc costing at least minIn, and in cycle mode the origin
// needs its closing arc back.
func (e *engine) lowerBound(costSoFar float64) float64 {
	lb := costSoFar + e.sumMinIn
	if e.ch.cycle {
		lb += e.minIn[e.path[0]]
	}

	return lb
}

// record commits a candidate visiting order as the new incumbent.
func (e *engine) record(path []int, cost float64) {
	if e.bestPath == nil {
		e.bestPath = make([]int, e.n)
	}
	copy(e.bestPath, path)
	e.bestCost = round1e9(cost)
	e.found = true
}

// pathCost sums the arc costs of a complete visiting order, including
// the closing arc in cycle mode. Returns +Inf when an arc is missing.
func (e *engine) pathCost(path []int) float64 {
	var (
		sum float64
		i   int
		c   float64
	)
	for i = 0; i+1 < len(path); i++ {
		c = e.at(path[i], path[i+1])
		if math.IsInf(c, 1) {
			return c
		}
		sum += c
	}
	if e.ch.cycle {
		c = e.at(path[len(path)-1], path[0])
		if math.IsInf(c, 1) {
			return c
		}
		sum += c
	}

	return sum
}

// transits materializes the per-arc transit vectors of a complete
// visiting order (closing arc included in cycle mode) for the splitter.
func (e *engine) transits(path []int) [][]float64 {
	var (
		out = make([][]float64, 0, e.arcCount())
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		t := make([]float64, len(e.tb))
		copy(t, e.transitVec(path[i], path[i+1]))
		out = append(out, t)
	}
	if e.ch.cycle {
		t := make([]float64, len(e.tb))
		copy(t, e.transitVec(path[len(path)-1], path[0]))
		out = append(out, t)
	}

	return out
}

// dfs performs the core search: deterministic branching, bound pruning,
// and capacity-frontier pruning.
func (e *engine) dfs(last, depth int, costSoFar float64, states []legState) {
	if e.deadlineCheck() {
		return
	}
	if e.found && e.lowerBound(costSoFar) >= e.bestCost-e.eps {
		return
	}

	// All nodes placed: close (cycle) or finish (open) and commit.
	if depth == e.n {
		if e.ch.cycle {
			c := e.at(last, e.path[0])
			if math.IsInf(c, 1) {
				return
			}
			final := e.sp.advance(states, e.transitVec(last, e.path[0]), 0)
			if !e.sp.done(final) {
				return
			}
			total := costSoFar + c
			if !e.found || total < e.bestCost-e.eps {
				e.record(e.path, total)
			}

			return
		}
		if !e.sp.done(states) {
			return
		}
		if !e.found || costSoFar < e.bestCost-e.eps {
			e.record(e.path, costSoFar)
		}

		return
	}

	var (
		v    int
		c    float64
		next []legState
	)
	for _, v = range e.nbr[last] {
		if e.visited[v] {
			continue
		}
		// A pinned open end is only reachable as the final node.
		if !e.ch.cycle && e.ch.endPin != -1 {
			if v == e.ch.endPin && depth != e.n-1 {
				continue
			}
			if v != e.ch.endPin && depth == e.n-1 {
				continue
			}
		}
		c = e.at(last, v)
		if math.IsInf(c, 1) {
			continue
		}
		next = e.sp.advance(states, e.transitVec(last, v), e.arcCount()-depth)
		if len(next) == 0 {
			continue
		}

		e.visited[v] = true
		e.sumMinIn -= e.minIn[v]
		e.path[depth] = v

		e.dfs(v, depth+1, costSoFar+c, next)

		e.sumMinIn += e.minIn[v]
		e.visited[v] = false

		if e.expired {
			return
		}
	}
}

// searchFrom runs one rooted DFS with start as the first node.
func (e *engine) searchFrom(start int) {
	var v int
	for v = 0; v < e.n; v++ {
		e.visited[v] = false
	}
	e.sumMinIn = 0
	for v = 0; v < e.n; v++ {
		e.sumMinIn += e.minIn[v]
	}

	e.path[0] = start
	e.visited[start] = true
	e.sumMinIn -= e.minIn[start]

	e.dfs(start, 1, 0, e.sp.initial())
}

// Solve runs the search and returns the raw Assignment.
//
// Errors:
//   - ErrCostUnset / ErrBadParams / ErrUnsupportedStrategy / sentinel
//     set of resolveChain and prefetch on malformed input;
//   - ErrNoFeasibleSolution when the exhaustive search proves
//     infeasibility;
//   - ErrTimeLimit when the budget expires before any feasible
//     assignment was found.
//
// Solve never mutates the model; concurrent Solve calls on one built
// model are safe.
func (m *Model) Solve(p SearchParams) (Assignment, error) {
	if err := validateParams(p); err != nil {
		return Assignment{}, err
	}
	if m.arc == nil {
		return Assignment{}, ErrCostUnset
	}
	ch, err := resolveChain(m)
	if err != nil {
		return Assignment{}, err
	}

	e := &engine{
		n:    m.nodes,
		legs: m.vehicles,
		ch:   ch,
		eps:  p.Eps,
	}

	// Not enough arcs to give every leg after the head at least one:
	// provably infeasible before any search.
	if e.legs-1 > e.arcCount() {
		return Assignment{}, ErrNoFeasibleSolution
	}

	if err = e.prefetch(m); err != nil {
		return Assignment{}, err
	}

	// Capacities in chain order: caps[leg][dim].
	caps := make([][]float64, e.legs)
	var d, k int
	for d = 0; d < e.legs; d++ {
		caps[d] = make([]float64, len(m.dims))
		for k = 0; k < len(m.dims); k++ {
			caps[d][k] = m.dims[k].caps[ch.order[d]]
		}
	}
	e.sp = newSplitter(e.legs, len(m.dims), caps)

	if p.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(p.TimeLimit)
	}

	e.precompute()
	e.visited = make([]bool, e.n)
	e.path = make([]int, e.n)
	e.bestCost = math.Inf(1)

	// Seed an incumbent; correctness never depends on it.
	e.seed(p)

	// Exact search from every admissible root.
	if ch.startPin != -1 {
		e.searchFrom(ch.startPin)
	} else {
		var s int
		for s = 0; s < e.n && !e.expired; s++ {
			if !ch.cycle && ch.endPin == s && e.n > 1 {
				continue
			}
			e.searchFrom(s)
		}
	}

	if !e.found {
		if e.expired {
			return Assignment{}, ErrTimeLimit
		}

		return Assignment{}, ErrNoFeasibleSolution
	}

	// Split the winning order into legs (lexicographic tie-break) and
	// emit per-vehicle routes.
	bounds, ok := e.sp.recoverSplit(e.transits(e.bestPath))
	if !ok {
		// The search only commits split-feasible orders.
		return Assignment{}, ErrNoFeasibleSolution
	}

	routes := make([][]int, m.vehicles)
	var lo, hi, pos int
	for d = 0; d < e.legs; d++ {
		lo, hi = bounds[d], bounds[d+1]
		seq := make([]int, 0, hi-lo+1)
		for pos = lo; pos <= hi; pos++ {
			if pos < e.n {
				seq = append(seq, e.bestPath[pos])
			} else {
				seq = append(seq, e.bestPath[0]) // cycle closure
			}
		}
		routes[ch.order[d]] = seq
	}

	return Assignment{Routes: routes, Cost: e.bestCost}, nil
}
