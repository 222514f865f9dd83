package travel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmarca/tsp-multiple-days/travel"
)

// square4 is the symmetric 4-location table used across the module's
// tests: AB=1, AC=4, AD=3, BC=2, BD=4, CD=1.
func square4() [][]float64 {
	return [][]float64{
		{0, 1, 4, 3},
		{1, 0, 2, 4},
		{4, 2, 0, 1},
		{3, 4, 1, 0},
	}
}

func TestNewMatrix_Valid(t *testing.T) {
	m, err := travel.NewMatrix(square4(), travel.WithSymmetric())
	require.NoError(t, err)
	require.Equal(t, 4, m.Len())

	got, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	// Immutability: mutating the input must not leak into the Matrix.
	in := square4()
	m2, err := travel.NewMatrix(in)
	require.NoError(t, err)
	in[0][1] = 99
	got, err = m2.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)
}

func TestNewMatrix_ShapeErrors(t *testing.T) {
	_, err := travel.NewMatrix(nil)
	require.ErrorIs(t, err, travel.ErrBadShape)

	_, err = travel.NewMatrix([][]float64{})
	require.ErrorIs(t, err, travel.ErrBadShape)

	_, err = travel.NewMatrix([][]float64{{0, 1}, {1, 0}, {2, 2}})
	require.ErrorIs(t, err, travel.ErrNonSquare)

	_, err = travel.NewMatrix([][]float64{{0, 1}, nil})
	require.ErrorIs(t, err, travel.ErrBadShape)
}

func TestNewMatrix_ValueErrors(t *testing.T) {
	// Non-zero diagonal.
	bad := square4()
	bad[2][2] = 0.5
	_, err := travel.NewMatrix(bad)
	require.ErrorIs(t, err, travel.ErrNonZeroDiagonal)

	// Negative cost.
	bad = square4()
	bad[0][3] = -1
	_, err = travel.NewMatrix(bad)
	require.ErrorIs(t, err, travel.ErrNegativeCost)

	// NaN is always rejected.
	bad = square4()
	bad[1][3] = math.NaN()
	_, err = travel.NewMatrix(bad)
	require.ErrorIs(t, err, travel.ErrBadValue)

	// +Inf rejected by default, accepted under WithInfiniteCosts.
	bad = square4()
	bad[1][3] = math.Inf(1)
	bad[3][1] = math.Inf(1)
	_, err = travel.NewMatrix(bad)
	require.ErrorIs(t, err, travel.ErrBadValue)
	_, err = travel.NewMatrix(bad, travel.WithInfiniteCosts())
	require.NoError(t, err)
	_, err = travel.NewMatrix(bad, travel.WithInfiniteCosts(), travel.WithSymmetric())
	require.NoError(t, err)

	// -Inf is rejected even under WithInfiniteCosts.
	bad = square4()
	bad[1][3] = math.Inf(-1)
	_, err = travel.NewMatrix(bad, travel.WithInfiniteCosts())
	require.ErrorIs(t, err, travel.ErrBadValue)
}

func TestNewMatrix_Symmetry(t *testing.T) {
	asym := square4()
	asym[0][1] = 1.5 // mirror stays 1
	_, err := travel.NewMatrix(asym, travel.WithSymmetric())
	require.ErrorIs(t, err, travel.ErrAsymmetry)

	// Without WithSymmetric the same table is accepted (ATSP instance).
	_, err = travel.NewMatrix(asym)
	require.NoError(t, err)

	// Within-eps wobble passes.
	wobble := square4()
	wobble[0][1] = 1 + 1e-12
	_, err = travel.NewMatrix(wobble, travel.WithSymmetric())
	require.NoError(t, err)
}

func TestNewMatrix_Names(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	m, err := travel.NewMatrix(square4(), travel.WithNames(names))
	require.NoError(t, err)
	require.Equal(t, "C", m.Name(2))

	loc, err := m.Location(3)
	require.NoError(t, err)
	require.Equal(t, travel.Location{Index: 3, Name: "D"}, loc)

	// Returned names are a copy.
	out := m.Names()
	out[0] = "Z"
	require.Equal(t, "A", m.Name(0))

	// Wrong count / empty / duplicate.
	_, err = travel.NewMatrix(square4(), travel.WithNames([]string{"A", "B"}))
	require.ErrorIs(t, err, travel.ErrBadNames)
	_, err = travel.NewMatrix(square4(), travel.WithNames([]string{"A", "", "C", "D"}))
	require.ErrorIs(t, err, travel.ErrBadNames)
	_, err = travel.NewMatrix(square4(), travel.WithNames([]string{"A", "A", "C", "D"}))
	require.ErrorIs(t, err, travel.ErrBadNames)
}

func TestMatrix_AccessErrors(t *testing.T) {
	m, err := travel.NewMatrix(square4())
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, travel.ErrOutOfRange)
	_, err = m.At(0, 4)
	require.ErrorIs(t, err, travel.ErrOutOfRange)
	_, err = m.Location(4)
	require.ErrorIs(t, err, travel.ErrOutOfRange)

	// Name is forgiving by contract.
	require.Equal(t, "", m.Name(17))
}

func TestMatrix_CostFn(t *testing.T) {
	m, err := travel.NewMatrix(square4())
	require.NoError(t, err)

	cost := m.CostFn()
	require.Equal(t, 3.0, cost(0, 3))
	require.Equal(t, 0.0, cost(2, 2))
}

func TestNewMatrix_SingleLocation(t *testing.T) {
	// N == 1 is a legal (if trivial) Location Graph.
	m, err := travel.NewMatrix([][]float64{{0}})
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
}
