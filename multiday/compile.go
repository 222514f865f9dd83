// Package multiday - lowering of the day model onto the routing engine.

package multiday

import (
	"github.com/jmarca/tsp-multiple-days/routing"
)

// travelDimension names the accumulated-cost resource capped by the
// per-day budgets.
const travelDimension = "travel"

// Compile lowers the model onto a fresh routing.Model:
//
//   - the arc cost callback reads straight from the travel matrix;
//   - one dimension, "travel", reuses the same callback as its transit
//     and carries the per-day budgets as vehicle capacities;
//   - continuity equalities End(d) == Start(d+1) chain the days;
//   - anchor pins per the configured mode.
//
// Compile never fails on infeasibility (that is Solve's verdict); an
// error here means this package drove the engine API incorrectly.
//
// Complexity: O(D).
func (m *Model) Compile() (*routing.Model, error) {
	rm, err := routing.NewModel(m.mat.Len(), m.cfg.Days)
	if err != nil {
		return nil, err
	}

	cost := m.mat.CostFn()
	if err = rm.SetArcCost(cost); err != nil {
		return nil, err
	}
	if _, err = rm.AddDimension(travelDimension, cost, m.budgets()); err != nil {
		return nil, err
	}

	var d int
	for d = 0; d+1 < m.cfg.Days; d++ {
		if err = rm.AddEquality(rm.EndVar(d), rm.StartVar(d+1)); err != nil {
			return nil, err
		}
	}

	switch m.cfg.Anchor {
	case FixedOrigin:
		err = rm.PinStart(0, m.cfg.Origin)
	case FixedOriginAndReturn:
		if err = rm.PinStart(0, m.cfg.Origin); err != nil {
			return nil, err
		}
		err = rm.PinEnd(m.cfg.Days-1, m.cfg.Origin)
	}
	if err != nil {
		return nil, err
	}

	return rm, nil
}
