// Package routing - first-solution strategies.
//
// The seed only supplies an upper bound for branch-and-bound pruning;
// it must be deterministic and pin-aware but needs no optimality
// guarantee. Both strategies work on the prefetched cost buffer and
// may fail (return nil) on sparse instances; the exact search then
// starts without an incumbent.

package routing

import "math"

// seed builds an initial incumbent per the configured strategy,
// polishes it with the metaheuristic, and records it when feasible.
func (e *engine) seed(p SearchParams) {
	build := e.cheapestArcPath
	if p.FirstSolution == CheapestInsertion {
		build = e.cheapestInsertionPath
	}

	var (
		cand []int
		best []int
		bc   = math.Inf(1)
		c    float64
	)
	if e.ch.startPin != -1 {
		best = build(e.ch.startPin)
	} else {
		// Free start: root the heuristic at every node, keep the
		// cheapest capacity-feasible candidate (smallest root wins ties).
		var s int
		for s = 0; s < e.n; s++ {
			if !e.ch.cycle && e.ch.endPin == s && e.n > 1 {
				continue
			}
			cand = build(s)
			if cand == nil {
				continue
			}
			c = e.pathCost(cand)
			if c < bc && e.sp.feasible(e.transits(cand)) {
				best, bc = cand, c
			}
		}
	}
	if best == nil {
		return
	}

	if p.Metaheuristic == GreedyDescent {
		best = e.improvePath(best, p)
	}

	c = e.pathCost(best)
	if !math.IsInf(c, 1) && e.sp.feasible(e.transits(best)) {
		e.record(best, c)
	}
}

// cheapestArcPath is the deterministic nearest-neighbor construction:
// from the current last node always extend along the cheapest arc
// (index tiebreak), deferring a pinned open end to the final slot.
// Returns nil when the greedy walk hits a missing arc.
func (e *engine) cheapestArcPath(start int) []int {
	var (
		path    = make([]int, 1, e.n)
		used    = make([]bool, e.n)
		last    = start
		best, v int
		bw, c   float64
		inf     = math.Inf(1)
	)
	path[0] = start
	used[start] = true

	for len(path) < e.n {
		atLast := len(path) == e.n-1
		best, bw = -1, inf
		for v = 0; v < e.n; v++ {
			if used[v] {
				continue
			}
			if !e.ch.cycle && e.ch.endPin != -1 {
				if v == e.ch.endPin && !atLast {
					continue
				}
				if v != e.ch.endPin && atLast {
					continue
				}
			}
			c = e.at(last, v)
			if c < bw {
				best, bw = v, c
			}
		}
		if best == -1 || math.IsInf(bw, 1) {
			return nil
		}
		path = append(path, best)
		used[best] = true
		last = best
	}

	return path
}

// cheapestInsertionPath grows a partial order by repeatedly inserting
// the unrouted node with the cheapest insertion delta (node, then
// position, as tiebreaks). The pinned open end stays terminal; in
// cycle mode the implicit closing arc participates in the deltas.
func (e *engine) cheapestInsertionPath(start int) []int {
	var (
		seq  = make([]int, 1, e.n)
		used = make([]bool, e.n)
		inf  = math.Inf(1)
	)
	seq[0] = start
	used[start] = true
	if !e.ch.cycle && e.ch.endPin != -1 && e.ch.endPin != start {
		seq = append(seq, e.ch.endPin)
		used[e.ch.endPin] = true
	}

	// delta computes the cost increase of inserting r at position q
	// (r becomes seq[q]).
	delta := func(r, q int) float64 {
		if q == len(seq) {
			// New tail of an open path.
			return e.at(seq[q-1], r)
		}
		a, b := seq[q-1], seq[q]

		return e.at(a, r) + e.at(r, b) - e.at(a, b)
	}

	var (
		r, q, br, bq int
		d, bd        float64
	)
	for len(seq) < e.n {
		br, bq, bd = -1, -1, inf
		for r = 0; r < e.n; r++ {
			if used[r] {
				continue
			}
			qMax := len(seq)
			if !e.ch.cycle && e.ch.endPin != -1 && seq[len(seq)-1] == e.ch.endPin {
				qMax = len(seq) - 1 // pinned tail stays terminal
			}
			for q = 1; q <= qMax; q++ {
				d = delta(r, q)
				if e.ch.cycle && q == len(seq) {
					// Splicing into the closing arc.
					d = e.at(seq[q-1], r) + e.at(r, seq[0]) - e.at(seq[q-1], seq[0])
				}
				if d < bd {
					br, bq, bd = r, q, d
				}
			}
		}
		if br == -1 || math.IsInf(bd, 1) {
			return nil
		}
		seq = append(seq, 0)
		copy(seq[bq+1:], seq[bq:])
		seq[bq] = br
		used[br] = true
	}

	return seq
}
