// Package routing - local search polish for the seed incumbent.
//
// Greedy descent with first-improvement acceptance over two
// neighborhoods:
//
//   - relocate: move one node to another position (always sound);
//   - reverse:  flip a contiguous segment (classic 2-opt; only sound
//     when the cost buffer is symmetric, since interior arcs flip).
//
// Every accepted move must both lower the objective and keep the order
// capacity-splittable, so the descent never walks out of the feasible
// region. Candidates are rebuilt and re-costed in full; instances at
// this scale make O(n) per move evaluation cheaper than the bookkeeping
// of incremental deltas across two coupled neighborhoods.

package routing

// move identifies one neighborhood step on the current order.
type move struct {
	kind int // 0 relocate, 1 reverse
	i, j int
}

const (
	moveRelocate = 0
	moveReverse  = 1
)

// improvePath runs greedy descent from path and returns the (possibly
// identical) improved order. The input slice is not mutated.
func (e *engine) improvePath(path []int, p SearchParams) []int {
	cur := make([]int, len(path))
	copy(cur, path)
	curCost := e.pathCost(cur)

	var (
		headFixed = e.ch.startPin != -1 || e.ch.cycle
		tailFixed = !e.ch.cycle && e.ch.endPin != -1
		moves     = e.enumerateMoves(headFixed, tailFixed)
		rng       = rngFromSeed(deriveSeed(p.Seed, 0x10ca15ea))
		cand      = make([]int, len(cur))
		ord       = make([]int, len(moves))
		improved  = true
	)
	for k := range ord {
		ord[k] = k
	}

	for improved {
		improved = false
		if p.ShuffleNeighborhood {
			shuffleIntsInPlace(ord, rng)
		}
		for _, k := range ord {
			mv := moves[k]
			if e.deadlineCheck() {
				return cur
			}
			if !e.applyMove(cand, cur, mv) {
				continue
			}
			c := e.pathCost(cand)
			if c >= curCost-e.eps {
				continue
			}
			if !e.sp.feasible(e.transits(cand)) {
				continue
			}
			copy(cur, cand)
			curCost = c
			improved = true
			break
		}
	}

	return cur
}

// enumerateMoves lists every admissible move index pair once; the
// descent rescans this fixed list each pass.
func (e *engine) enumerateMoves(headFixed, tailFixed bool) []move {
	var (
		out  []move
		n    = e.n
		lo   = 0
		hi   = n - 1
		i, j int
	)
	if headFixed {
		lo = 1
	}
	if tailFixed {
		hi = n - 2
	}

	for i = lo; i <= hi; i++ {
		for j = lo; j <= hi; j++ {
			if i != j {
				out = append(out, move{kind: moveRelocate, i: i, j: j})
			}
		}
	}
	if e.symmetric {
		for i = lo; i < n; i++ {
			for j = i + 1; j <= hi+1 && j < n; j++ {
				// Reversing a pinned tail into the interior is illegal.
				if tailFixed && j == n-1 {
					continue
				}
				out = append(out, move{kind: moveReverse, i: i, j: j})
			}
		}
	}

	return out
}

// applyMove writes the neighbor of cur under mv into dst. Returns false
// when the move is a no-op on this order.
func (e *engine) applyMove(dst, cur []int, mv move) bool {
	copy(dst, cur)
	switch mv.kind {
	case moveRelocate:
		x := dst[mv.i]
		if mv.i < mv.j {
			copy(dst[mv.i:], dst[mv.i+1:mv.j+1])
		} else {
			copy(dst[mv.j+1:], cur[mv.j:mv.i])
		}
		dst[mv.j] = x

		return true
	case moveReverse:
		for a, b := mv.i, mv.j; a < b; a, b = a+1, b-1 {
			dst[a], dst[b] = dst[b], dst[a]
		}

		return true
	}

	return false
}
