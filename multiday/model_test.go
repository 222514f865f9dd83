package multiday

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmarca/tsp-multiple-days/travel"
)

func matrix4(t *testing.T) *travel.Matrix {
	t.Helper()

	m, err := travel.NewMatrix([][]float64{
		{0, 1, 4, 3},
		{1, 0, 2, 4},
		{4, 2, 0, 1},
		{3, 4, 1, 0},
	})
	require.NoError(t, err)

	return m
}

func TestNewModel_NilMatrix(t *testing.T) {
	_, err := NewModel(nil, Config{Days: 1, Budget: 1})
	require.ErrorIs(t, err, ErrNilMatrix)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestNewModel_DayCount(t *testing.T) {
	mat := matrix4(t)

	_, err := NewModel(mat, Config{Days: 0, Budget: 1})
	require.ErrorIs(t, err, ErrDayCount)

	// More days than locations can never give every day a fresh visit.
	_, err = NewModel(mat, Config{Days: 5, Budget: 1})
	require.ErrorIs(t, err, ErrDayCount)

	mat5, err := travel.NewMatrix([][]float64{
		{0, 1, 1, 1, 1},
		{1, 0, 1, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 0, 1},
		{1, 1, 1, 1, 0},
	})
	require.NoError(t, err)
	_, err = NewModel(mat5, Config{Days: 6, Budget: 1})
	require.ErrorIs(t, err, ErrDayCount)

	m, err := NewModel(mat, Config{Days: 4, Budget: 1})
	require.NoError(t, err)
	require.Len(t, m.Days(), 4)
}

func TestNewModel_Budgets(t *testing.T) {
	mat := matrix4(t)

	for _, bad := range []float64{math.NaN(), math.Inf(1), -1} {
		_, err := NewModel(mat, Config{Days: 2, Budget: bad})
		require.ErrorIs(t, err, ErrBadBudget)
	}

	_, err := NewModel(mat, Config{Days: 2, Budgets: []float64{1}})
	require.ErrorIs(t, err, ErrBudgetCount)

	// Per-day budgets override the uniform one.
	m, err := NewModel(mat, Config{Days: 2, Budget: 99, Budgets: []float64{1, 2}})
	require.NoError(t, err)
	days := m.Days()
	require.Equal(t, 1.0, days[0].Budget)
	require.Equal(t, 2.0, days[1].Budget)
}

func TestNewModel_Anchors(t *testing.T) {
	mat := matrix4(t)

	_, err := NewModel(mat, Config{Days: 2, Budget: 5, Anchor: FixedOrigin, Origin: 4})
	require.ErrorIs(t, err, ErrOriginRange)

	_, err = NewModel(mat, Config{Days: 2, Budget: 5, Anchor: FixedOriginAndReturn, Origin: -1})
	require.ErrorIs(t, err, ErrOriginRange)

	// The free mode ignores Origin entirely.
	_, err = NewModel(mat, Config{Days: 2, Budget: 5, Anchor: FreeStartFreeEnd, Origin: 99})
	require.NoError(t, err)

	_, err = NewModel(mat, Config{Days: 2, Budget: 5, Anchor: AnchorMode(9)})
	require.ErrorIs(t, err, ErrBadAnchor)
}

func TestNewModel_UnresolvedDayRecords(t *testing.T) {
	mat := matrix4(t)

	m, err := NewModel(mat, Config{Days: 2, Budget: 5})
	require.NoError(t, err)
	for _, dv := range m.Days() {
		require.Equal(t, -1, dv.Start)
		require.Equal(t, -1, dv.End)
		require.Nil(t, dv.Stops)
	}
}

func TestCompile_Shape(t *testing.T) {
	mat := matrix4(t)

	m, err := NewModel(mat, Config{Days: 3, Budget: 5, Anchor: FixedOrigin, Origin: 0})
	require.NoError(t, err)

	rm, err := m.Compile()
	require.NoError(t, err)
	require.Equal(t, 4, rm.NodeCount())
	require.Equal(t, 3, rm.VehicleCount())
}
