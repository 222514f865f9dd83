package routing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// square4 is the running example instance: symmetric, with a unique
// cheapest open path 0-1-2-3 of cost 4 when rooted at node 0.
func square4() [][]float64 {
	return [][]float64{
		{0, 1, 4, 3},
		{1, 0, 2, 4},
		{4, 2, 0, 1},
		{3, 4, 1, 0},
	}
}

// chainModel builds a model over w with the vehicles chained by
// continuity equalities and, when caps != nil, a "travel" dimension
// whose transit equals the arc cost.
func chainModel(t *testing.T, w [][]float64, vehicles int, caps []float64) *Model {
	t.Helper()

	m, err := NewModel(len(w), vehicles)
	require.NoError(t, err)
	require.NoError(t, m.SetArcCost(func(i, j int) float64 { return w[i][j] }))
	if caps != nil {
		_, err = m.AddDimension("travel", func(i, j int) float64 { return w[i][j] }, caps)
		require.NoError(t, err)
	}
	var v int
	for v = 0; v+1 < vehicles; v++ {
		require.NoError(t, m.AddEquality(m.EndVar(v), m.StartVar(v+1)))
	}

	return m
}

// requireVisitPartition checks the chained routes visit every node
// exactly once (boundary nodes shared between consecutive routes).
func requireVisitPartition(t *testing.T, routes [][]int, n int) {
	t.Helper()

	seen := make(map[int]int, n)
	for d, r := range routes {
		require.NotEmpty(t, r, "route %d", d)
		if d > 0 {
			require.Equal(t, routes[d-1][len(routes[d-1])-1], r[0],
				"route %d must start where route %d ends", d, d-1)
		}
		start := 0
		if d > 0 {
			start = 1 // shared boundary node, counted once
		}
		for _, node := range r[start:] {
			seen[node]++
		}
	}
	require.Len(t, seen, n)
	for node, c := range seen {
		require.Equal(t, 1, c, "node %d", node)
	}
}

func TestSolve_SingleVehicle_OpenPath(t *testing.T) {
	w := [][]float64{
		{0, 1, 5},
		{1, 0, 1},
		{5, 1, 0},
	}
	m := chainModel(t, w, 1, nil)

	a, err := m.Solve(DefaultSearchParams())
	require.NoError(t, err)
	require.Equal(t, 2.0, a.Cost)
	require.Len(t, a.Routes, 1)
	requireVisitPartition(t, a.Routes, 3)
}

func TestSolve_SingleVehicle_Tour(t *testing.T) {
	w := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	m := chainModel(t, w, 1, nil)
	require.NoError(t, m.PinStart(0, 0))
	require.NoError(t, m.PinEnd(0, 0))

	a, err := m.Solve(DefaultSearchParams())
	require.NoError(t, err)
	require.Equal(t, 6.0, a.Cost)
	require.Len(t, a.Routes, 1)

	r := a.Routes[0]
	require.Len(t, r, 4)
	require.Equal(t, 0, r[0])
	require.Equal(t, 0, r[len(r)-1])
	require.ElementsMatch(t, []int{1, 2}, r[1:3])
}

func TestSolve_TwoLegChain_BudgetAndLexSplit(t *testing.T) {
	m := chainModel(t, square4(), 2, []float64{5, 5})
	require.NoError(t, m.PinStart(0, 0))

	a, err := m.Solve(DefaultSearchParams())
	require.NoError(t, err)
	require.Equal(t, 4.0, a.Cost)

	// The whole path fits the second leg's budget, so the
	// lexicographically smallest split keeps the head leg at its start.
	require.Equal(t, []int{0}, a.Routes[0])
	require.Equal(t, []int{0, 1, 2, 3}, a.Routes[1])
	requireVisitPartition(t, a.Routes, 4)
}

func TestSolve_ForcedSplit(t *testing.T) {
	// Tightening the tail budget below the full path cost forces arcs
	// onto the head leg.
	m := chainModel(t, square4(), 2, []float64{5, 3})
	require.NoError(t, m.PinStart(0, 0))

	a, err := m.Solve(DefaultSearchParams())
	require.NoError(t, err)
	require.Equal(t, 4.0, a.Cost)
	require.Equal(t, []int{0, 1}, a.Routes[0])
	require.Equal(t, []int{1, 2, 3}, a.Routes[1])
	requireVisitPartition(t, a.Routes, 4)
}

func TestSolve_Infeasible_Budget(t *testing.T) {
	// Every Hamiltonian path over this instance carries an arc of cost
	// >= 2 somewhere, so unit budgets admit no assignment.
	m := chainModel(t, square4(), 3, []float64{1, 1, 1})
	require.NoError(t, m.PinStart(0, 0))

	_, err := m.Solve(DefaultSearchParams())
	require.ErrorIs(t, err, ErrNoFeasibleSolution)
}

func TestSolve_OneArcPerLeg(t *testing.T) {
	// As many legs as nodes: the head stays at its start, every other
	// leg advances by exactly one arc.
	m := chainModel(t, square4(), 4, nil)
	require.NoError(t, m.PinStart(0, 0))

	a, err := m.Solve(DefaultSearchParams())
	require.NoError(t, err)
	require.Equal(t, 4.0, a.Cost)
	require.Equal(t, []int{0}, a.Routes[0])
	require.Equal(t, []int{0, 1}, a.Routes[1])
	require.Equal(t, []int{1, 2}, a.Routes[2])
	require.Equal(t, []int{2, 3}, a.Routes[3])
}

func TestSolve_MoreLegsThanArcs(t *testing.T) {
	m := chainModel(t, square4(), 5, nil)
	require.NoError(t, m.PinStart(0, 0))

	_, err := m.Solve(DefaultSearchParams())
	require.ErrorIs(t, err, ErrNoFeasibleSolution)
}

func TestSolve_MissingArcs(t *testing.T) {
	inf := math.Inf(1)
	w := [][]float64{
		{0, inf},
		{inf, 0},
	}
	m := chainModel(t, w, 1, nil)

	_, err := m.Solve(DefaultSearchParams())
	require.ErrorIs(t, err, ErrNoFeasibleSolution)
}

func TestSolve_Topology_MissingLink(t *testing.T) {
	m, err := NewModel(4, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetArcCost(func(i, j int) float64 { return 1 }))

	_, err = m.Solve(DefaultSearchParams())
	require.ErrorIs(t, err, ErrUnsupportedTopology)
}

func TestSolve_Topology_InteriorPin(t *testing.T) {
	m := chainModel(t, square4(), 2, nil)
	require.NoError(t, m.PinEnd(0, 2)) // interior boundary is linked, not pinnable

	_, err := m.Solve(DefaultSearchParams())
	require.ErrorIs(t, err, ErrUnsupportedTopology)
}

func TestSolve_CostUnset(t *testing.T) {
	m, err := NewModel(3, 1)
	require.NoError(t, err)

	_, err = m.Solve(DefaultSearchParams())
	require.ErrorIs(t, err, ErrCostUnset)
}

func TestSolve_BadCostCallback(t *testing.T) {
	m, err := NewModel(3, 1)
	require.NoError(t, err)
	require.NoError(t, m.SetArcCost(func(i, j int) float64 { return -1 }))

	_, err = m.Solve(DefaultSearchParams())
	require.ErrorIs(t, err, ErrBadCost)
}

func TestSolve_BadParams(t *testing.T) {
	m := chainModel(t, square4(), 1, nil)

	p := DefaultSearchParams()
	p.TimeLimit = -time.Second
	_, err := m.Solve(p)
	require.ErrorIs(t, err, ErrBadParams)
}

func TestSolve_Deterministic(t *testing.T) {
	run := func(p SearchParams) Assignment {
		m := chainModel(t, square4(), 2, []float64{5, 5})
		require.NoError(t, m.PinStart(0, 0))
		a, err := m.Solve(p)
		require.NoError(t, err)

		return a
	}

	p := DefaultSearchParams()
	require.Equal(t, run(p), run(p))

	p.ShuffleNeighborhood = true
	p.Seed = 42
	require.Equal(t, run(p), run(p))
}

func TestSolve_StrategiesAgreeOnOptimum(t *testing.T) {
	for _, fs := range []FirstSolutionStrategy{PathCheapestArc, CheapestInsertion} {
		m := chainModel(t, square4(), 2, []float64{5, 5})
		require.NoError(t, m.PinStart(0, 0))

		p := DefaultSearchParams()
		p.FirstSolution = fs
		a, err := m.Solve(p)
		require.NoError(t, err)
		require.Equal(t, 4.0, a.Cost)
	}
}

func TestSolve_TimeLimit_StillSolvesSmall(t *testing.T) {
	m := chainModel(t, square4(), 2, []float64{5, 5})
	require.NoError(t, m.PinStart(0, 0))

	p := DefaultSearchParams()
	p.TimeLimit = 5 * time.Second
	a, err := m.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 4.0, a.Cost)
}

func TestSolve_TimeLimit_NoIncumbent(t *testing.T) {
	// Eleven unit arcs can never split into two legs of capacity five,
	// so no assignment exists and the seed is rejected as infeasible.
	// Proving infeasibility exhaustively takes far longer than a
	// nanosecond; with no incumbent the verdict is the time limit.
	const n = 12
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			if i != j {
				w[i][j] = 1
			}
		}
	}
	m := chainModel(t, w, 2, []float64{5, 5})
	require.NoError(t, m.PinStart(0, 0))

	p := DefaultSearchParams()
	p.Metaheuristic = NoMetaheuristic
	p.TimeLimit = time.Nanosecond
	_, err := m.Solve(p)
	require.ErrorIs(t, err, ErrTimeLimit)
}

func TestSolve_NoMetaheuristic(t *testing.T) {
	m := chainModel(t, square4(), 1, nil)
	require.NoError(t, m.PinStart(0, 0))

	p := DefaultSearchParams()
	p.Metaheuristic = NoMetaheuristic
	a, err := m.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 4.0, a.Cost)
}
