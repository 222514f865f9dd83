// Package multiday - configuration and model handle.

package multiday

import (
	"math"

	"github.com/jmarca/tsp-multiple-days/travel"
)

// AnchorMode selects how the itinerary is tied to a home location.
type AnchorMode int

const (
	// FreeStartFreeEnd lets the search choose both the first location of
	// day 0 and the last location of the final day.
	FreeStartFreeEnd AnchorMode = iota

	// FixedOrigin pins day 0 to start at Config.Origin; the final
	// location stays free.
	FixedOrigin

	// FixedOriginAndReturn pins day 0 to start at Config.Origin and the
	// final day to end there: a multi-day round trip.
	FixedOriginAndReturn
)

// Config describes a multi-day planning instance.
type Config struct {
	// Days is the number of consecutive travel days, 1 <= Days <= N.
	Days int

	// Budget is the uniform per-day cost bound. Ignored when Budgets is
	// set.
	Budget float64

	// Budgets optionally sets one bound per day (len == Days); it
	// overrides Budget.
	Budgets []float64

	// Anchor selects the home-location policy.
	Anchor AnchorMode

	// Origin is the home location index, required by the anchored modes.
	Origin int
}

// DayVehicle is the per-day planning record: one "vehicle" of the
// underlying engine. Start, End and Stops stay unresolved (-1 / nil)
// until an itinerary is extracted.
type DayVehicle struct {
	Day    int
	Start  int
	End    int
	Budget float64
	Stops  []int
}

// Model is a validated multi-day instance bound to a cost matrix.
// Construct via NewModel; the zero value is not usable. A Model is not
// safe for concurrent use (Extract resolves the day records in place);
// concurrent probes of alternative day counts must each build their
// own model.
type Model struct {
	mat  *travel.Matrix
	cfg  Config
	days []DayVehicle
}

// NewModel validates cfg against mat and builds the per-day records.
//
// Validation stages:
//
//	Stage 1 - matrix present, day count within [1..N];
//	Stage 2 - budgets finite and non-negative, per-day count exact;
//	Stage 3 - anchor mode known, origin in range for anchored modes.
//
// All failures satisfy errors.Is(err, ErrConfiguration).
//
// Complexity: O(D).
func NewModel(mat *travel.Matrix, cfg Config) (*Model, error) {
	// Stage 1.
	if mat == nil {
		return nil, ErrNilMatrix
	}
	if cfg.Days < 1 || cfg.Days > mat.Len() {
		return nil, ErrDayCount
	}

	// Stage 2.
	budgets := make([]float64, cfg.Days)
	if cfg.Budgets != nil {
		if len(cfg.Budgets) != cfg.Days {
			return nil, ErrBudgetCount
		}
		copy(budgets, cfg.Budgets)
	} else {
		var d int
		for d = 0; d < cfg.Days; d++ {
			budgets[d] = cfg.Budget
		}
	}
	for _, b := range budgets {
		if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
			return nil, ErrBadBudget
		}
	}

	// Stage 3.
	switch cfg.Anchor {
	case FreeStartFreeEnd:
	case FixedOrigin, FixedOriginAndReturn:
		if cfg.Origin < 0 || cfg.Origin >= mat.Len() {
			return nil, ErrOriginRange
		}
	default:
		return nil, ErrBadAnchor
	}

	days := make([]DayVehicle, cfg.Days)
	var d int
	for d = 0; d < cfg.Days; d++ {
		days[d] = DayVehicle{Day: d, Start: -1, End: -1, Budget: budgets[d]}
	}

	return &Model{mat: mat, cfg: cfg, days: days}, nil
}

// Matrix returns the cost matrix the model plans over.
func (m *Model) Matrix() *travel.Matrix { return m.mat }

// Config returns the configuration the model was built from.
func (m *Model) Config() Config { return m.cfg }

// Days returns a copy of the per-day records. Start, End and Stops are
// filled by the most recent successful Extract.
func (m *Model) Days() []DayVehicle {
	out := make([]DayVehicle, len(m.days))
	copy(out, m.days)
	var d int
	for d = 0; d < len(out); d++ {
		if m.days[d].Stops != nil {
			out[d].Stops = append([]int(nil), m.days[d].Stops...)
		}
	}

	return out
}

// budgets lists the resolved per-day bounds in day order.
func (m *Model) budgets() []float64 {
	out := make([]float64, len(m.days))
	var d int
	for d = 0; d < len(m.days); d++ {
		out[d] = m.days[d].Budget
	}

	return out
}
