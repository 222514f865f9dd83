package routing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewModel_Validation(t *testing.T) {
	_, err := NewModel(0, 1)
	require.ErrorIs(t, err, ErrNodeCount)

	_, err = NewModel(3, 0)
	require.ErrorIs(t, err, ErrVehicleCount)

	m, err := NewModel(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, m.NodeCount())
	require.Equal(t, 2, m.VehicleCount())
}

func TestSetArcCost_Nil(t *testing.T) {
	m, err := NewModel(3, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.SetArcCost(nil), ErrNilCost)
}

func TestAddDimension_Validation(t *testing.T) {
	m, err := NewModel(3, 2)
	require.NoError(t, err)

	unit := func(int, int) float64 { return 1 }

	_, err = m.AddDimension("d", nil, []float64{1, 1})
	require.ErrorIs(t, err, ErrNilCost)

	_, err = m.AddDimension("d", unit, []float64{1})
	require.ErrorIs(t, err, ErrBadCapacity)

	_, err = m.AddDimension("d", unit, []float64{1, -1})
	require.ErrorIs(t, err, ErrBadCapacity)

	_, err = m.AddDimension("d", unit, []float64{1, math.NaN()})
	require.ErrorIs(t, err, ErrBadCapacity)

	// +Inf is "unlimited", not an error.
	d, err := m.AddDimension("d", unit, []float64{1, math.Inf(1)})
	require.NoError(t, err)
	require.Equal(t, "d", d.Name())
}

func TestAddDimension_CopiesCapacities(t *testing.T) {
	m, err := NewModel(3, 2)
	require.NoError(t, err)

	caps := []float64{5, 5}
	_, err = m.AddDimension("d", func(int, int) float64 { return 1 }, caps)
	require.NoError(t, err)

	caps[0] = 0 // must not leak into the model
	require.Equal(t, 5.0, m.dims[0].caps[0])
}

func TestPins_Range(t *testing.T) {
	m, err := NewModel(3, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.PinStart(-1, 0), ErrPinOutOfRange)
	require.ErrorIs(t, m.PinStart(0, 3), ErrPinOutOfRange)
	require.ErrorIs(t, m.PinEnd(2, 0), ErrPinOutOfRange)
	require.NoError(t, m.PinStart(0, 2))
	require.NoError(t, m.PinEnd(1, 2))
}

func TestAddEquality_Range(t *testing.T) {
	m, err := NewModel(3, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.AddEquality(m.EndVar(0), Var{Vehicle: 5}), ErrVarOutOfRange)
	require.NoError(t, m.AddEquality(m.EndVar(0), m.StartVar(1)))
}

func TestValidateParams(t *testing.T) {
	p := DefaultSearchParams()
	require.NoError(t, validateParams(p))

	p.TimeLimit = -time.Second
	require.ErrorIs(t, validateParams(p), ErrBadParams)

	p = DefaultSearchParams()
	p.Eps = -1
	require.ErrorIs(t, validateParams(p), ErrBadParams)

	p = DefaultSearchParams()
	p.FirstSolution = FirstSolutionStrategy(99)
	require.ErrorIs(t, validateParams(p), ErrUnsupportedStrategy)

	p = DefaultSearchParams()
	p.Metaheuristic = Metaheuristic(99)
	require.ErrorIs(t, validateParams(p), ErrUnsupportedStrategy)
}
