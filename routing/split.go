// Package routing - leg splitting machinery for the vehicle chain.
//
// With the vehicles chained by continuity (end of leg d == start of leg
// d+1) the engine searches one global visiting order and assigns its
// consecutive arcs to legs. Three pieces live here:
//
//   - a forward frontier of (leg, accumulated-resources) states used to
//     prune partial visiting orders during search; with several
//     dimensions the frontier keeps the Pareto-minimal accumulators per
//     leg, so pruning stays exact;
//   - a full-path feasibility check for candidate seeds and local-search
//     moves;
//   - split recovery for the winning order: among all feasible arc
//     assignments it returns the lexicographically smallest per-leg cost
//     vector (the documented tie-break; costs are non-negative, so
//     "earliest feasible boundary" realizes it).
//
// Leg emptiness rule: the chain head's leg may carry zero arcs (its
// vehicle stays at its start node); every later leg must carry at least
// one arc, otherwise that vehicle would visit nothing new.

package routing

// legState is one frontier entry: the current leg index and the
// accumulated transit of every dimension since that leg started.
type legState struct {
	leg int
	acc []float64 // len == number of dimensions; nil when no dimensions
}

// splitter owns the per-leg capacity table: caps[leg][dim].
type splitter struct {
	legs int
	kdim int
	caps [][]float64
}

// newSplitter binds capacities in chain order: caps[d][k] is the bound
// of dimension k on the vehicle driving leg d.
func newSplitter(legs, kdim int, caps [][]float64) *splitter {
	return &splitter{legs: legs, kdim: kdim, caps: caps}
}

// initial returns the frontier of an order holding only its first node.
func (s *splitter) initial() []legState {
	var acc []float64
	if s.kdim > 0 {
		acc = make([]float64, s.kdim)
	}

	return []legState{{leg: 0, acc: acc}}
}

// fits reports whether acc respects every capacity of leg d.
func (s *splitter) fits(acc []float64, d int) bool {
	var k int
	for k = 0; k < s.kdim; k++ {
		if acc[k] > s.caps[d][k] {
			return false
		}
	}

	return true
}

// advance consumes one arc with per-dimension transit t and returns the
// next frontier. arcsLeft is the number of arcs still to come after this
// one (closing arc included in cycle mode); states that cannot open
// enough legs with the remaining arcs are dropped. An empty result means
// the partial order is infeasible and the branch can be pruned.
//
// Complexity: O(|states| * kdim) plus the Pareto sweep.
func (s *splitter) advance(states []legState, t []float64, arcsLeft int) []legState {
	var (
		out  = make([]legState, 0, len(states)*2)
		st   legState
		k    int
		next []float64
	)
	for _, st = range states {
		// Extend the current leg with this arc.
		if s.kdim == 0 {
			out = append(out, legState{leg: st.leg})
		} else {
			next = make([]float64, s.kdim)
			for k = 0; k < s.kdim; k++ {
				next[k] = st.acc[k] + t[k]
			}
			if s.fits(next, st.leg) {
				out = append(out, legState{leg: st.leg, acc: next})
			}
		}

		// Or close the leg here and start the next one with this arc.
		if st.leg+1 < s.legs {
			if s.kdim == 0 {
				out = append(out, legState{leg: st.leg + 1})
			} else {
				next = make([]float64, s.kdim)
				copy(next, t)
				if s.fits(next, st.leg+1) {
					out = append(out, legState{leg: st.leg + 1, acc: next})
				}
			}
		}
	}

	// Reachability: leg L-1 must still be reachable, one arc per missing
	// leg.
	var (
		kept = out[:0]
		need int
	)
	for _, st = range out {
		need = s.legs - 1 - st.leg
		if need <= arcsLeft {
			kept = append(kept, st)
		}
	}

	return s.pareto(kept)
}

// pareto keeps, per leg, only non-dominated accumulators (componentwise
// minimal). With zero dimensions one state per leg survives.
//
// Complexity: O(|states|² * kdim); frontiers stay tiny in practice
// (bounded by legs for a single dimension).
func (s *splitter) pareto(states []legState) []legState {
	var (
		out      = make([]legState, 0, len(states))
		i, j, k  int
		dom, leq bool
	)
	for i = 0; i < len(states); i++ {
		dom = false
		for j = 0; j < len(states); j++ {
			if i == j || states[j].leg != states[i].leg {
				continue
			}
			// states[j] dominates states[i] when every coordinate is <=
			// and (to break exact duplicates) j comes first.
			leq = true
			for k = 0; k < s.kdim; k++ {
				if states[j].acc[k] > states[i].acc[k] {
					leq = false
					break
				}
			}
			if leq && (j < i || !s.equalAcc(states[i].acc, states[j].acc)) {
				dom = true
				break
			}
		}
		if !dom {
			out = append(out, states[i])
		}
	}

	return out
}

// equalAcc reports componentwise equality of two accumulators.
func (s *splitter) equalAcc(a, b []float64) bool {
	var k int
	for k = 0; k < s.kdim; k++ {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}

// done reports whether a finished frontier (all arcs consumed, closing
// arc included) contains a state on the final leg.
func (s *splitter) done(states []legState) bool {
	var st legState
	for _, st = range states {
		if st.leg == s.legs-1 {
			return true
		}
	}

	return false
}

// feasible runs the frontier over a full arc sequence.
//
// Complexity: O(M * frontier * kdim) for M arcs.
func (s *splitter) feasible(ts [][]float64) bool {
	states := s.initial()

	var i int
	for i = 0; i < len(ts); i++ {
		states = s.advance(states, ts[i], len(ts)-1-i)
		if len(states) == 0 {
			return false
		}
	}

	return s.done(states)
}

// recoverSplit returns the leg boundaries for a feasible arc sequence:
// boundaries[d] is the index of the first arc of leg d, with
// boundaries[legs] == len(ts). Among all feasible splits it picks the
// lexicographically smallest per-leg cost vector. Returns false when the
// sequence admits no feasible split (callers treat that as an internal
// defect since search only emits feasible orders).
//
// Complexity: O(M² * legs * kdim) time, O(M * legs) space.
func (s *splitter) recoverSplit(ts [][]float64) ([]int, bool) {
	var (
		m = len(ts)
		d int
		i int
		j int
	)

	// ok[i][d]: legs d..legs-1 can consume arcs i..m-1, leg d starting
	// fresh at arc i.
	ok := make([][]bool, m+1)
	for i = 0; i <= m; i++ {
		ok[i] = make([]bool, s.legs+1)
	}
	ok[m][s.legs] = true

	var (
		acc  = make([]float64, s.kdim)
		k    int
		fits bool
	)
	for d = s.legs - 1; d >= 0; d-- {
		for i = m; i >= 0; i-- {
			// Leg d may be empty only when it is the chain head's.
			jmin := i + 1
			if d == 0 {
				jmin = i
			}
			for k = 0; k < s.kdim; k++ {
				acc[k] = 0
			}
			for j = i; j <= m; j++ {
				if j > i {
					fits = true
					for k = 0; k < s.kdim; k++ {
						acc[k] += ts[j-1][k]
						if acc[k] > s.caps[d][k] {
							fits = false
						}
					}
					if !fits {
						break // accumulators only grow; no later j fits
					}
				}
				if j >= jmin && ok[j][d+1] {
					ok[i][d] = true
					break
				}
			}
		}
	}

	if !ok[0][0] {
		return nil, false
	}

	// Greedy earliest-boundary walk = lexicographically smallest vector.
	bounds := make([]int, s.legs+1)
	i = 0
	for d = 0; d < s.legs; d++ {
		jmin := i + 1
		if d == 0 {
			jmin = i
		}
		for k = 0; k < s.kdim; k++ {
			acc[k] = 0
		}
		found := false
		for j = i; j <= m; j++ {
			if j > i {
				fits = true
				for k = 0; k < s.kdim; k++ {
					acc[k] += ts[j-1][k]
					if acc[k] > s.caps[d][k] {
						fits = false
					}
				}
				if !fits {
					break
				}
			}
			if j >= jmin && ok[j][d+1] {
				bounds[d+1] = j
				i = j
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}

	return bounds, true
}
