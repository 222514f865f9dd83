// Package multiday - itinerary extraction and invariant re-verification.

package multiday

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/jmarca/tsp-multiple-days/routing"
)

// verifyEps absorbs accumulated floating-point drift when re-checking
// budgets; costCheckEps bounds the drift between the engine's reported
// total and the re-accumulated day costs.
const (
	verifyEps    = 1e-9
	costCheckEps = 1e-6
)

// Day is one extracted day-route. Locations lists the visited location
// indices in travel order; the overnight location appears as the last
// element of one day and the first of the next.
type Day struct {
	Index     int
	Locations []int
	Cost      float64
}

// Itinerary is a complete multi-day plan. ID is a fresh UUID per
// extraction, so callers comparing itineraries from concurrent probes
// of alternative day counts can tell the results apart.
type Itinerary struct {
	ID        string
	Days      []Day
	TotalCost float64
}

// Extract converts a raw engine assignment into an Itinerary and
// re-verifies every invariant the engine was supposed to enforce:
//
//	(a) the days partition all locations (overnight stays counted once,
//	    the round-trip return to the origin counted once);
//	(b) every day's accumulated cost respects its budget;
//	(c) every day starts where the previous one ended;
//	(d) the anchor pins hold.
//
// Any violation returns ErrInternalConsistency: the engine and this
// package disagree, which is a defect, not bad input. On success the
// model's DayVehicle records are updated with the resolved Start, End
// and Stops.
//
// Complexity: O(N).
func (m *Model) Extract(a routing.Assignment) (Itinerary, error) {
	var (
		n    = m.mat.Len()
		nd   = m.cfg.Days
		cost = m.mat.CostFn()
	)
	if len(a.Routes) != nd {
		return Itinerary{}, fmt.Errorf("%w: %d routes for %d days", ErrInternalConsistency, len(a.Routes), nd)
	}

	var (
		days  = make([]Day, nd)
		seen  = make([]int, n)
		total float64
		d, i  int
	)
	for d = 0; d < nd; d++ {
		r := a.Routes[d]
		if len(r) == 0 {
			return Itinerary{}, fmt.Errorf("%w: day %d has no route", ErrInternalConsistency, d)
		}
		if d > 0 && len(r) < 2 {
			return Itinerary{}, fmt.Errorf("%w: day %d visits nothing new", ErrInternalConsistency, d)
		}
		for _, i = range r {
			if i < 0 || i >= n {
				return Itinerary{}, fmt.Errorf("%w: day %d references location %d", ErrInternalConsistency, d, i)
			}
		}
		if d > 0 && r[0] != a.Routes[d-1][len(a.Routes[d-1])-1] {
			return Itinerary{}, fmt.Errorf("%w: day %d does not start where day %d ends", ErrInternalConsistency, d, d-1)
		}

		var dc float64
		for i = 0; i+1 < len(r); i++ {
			dc += cost(r[i], r[i+1])
		}
		if dc > m.days[d].Budget+verifyEps {
			return Itinerary{}, fmt.Errorf("%w: day %d cost %v exceeds budget %v", ErrInternalConsistency, d, dc, m.days[d].Budget)
		}
		total += dc

		// Overnight stays count once; the round-trip return likewise.
		lo := 0
		if d > 0 {
			lo = 1
		}
		hi := len(r)
		if d == nd-1 && m.cfg.Anchor == FixedOriginAndReturn && (nd > 1 || len(r) > 1) {
			hi--
		}
		for i = lo; i < hi; i++ {
			seen[r[i]]++
		}

		days[d] = Day{
			Index:     d,
			Locations: append([]int(nil), r...),
			Cost:      dc,
		}
	}

	for i = 0; i < n; i++ {
		if seen[i] != 1 {
			return Itinerary{}, fmt.Errorf("%w: location %d visited %d times", ErrInternalConsistency, i, seen[i])
		}
	}

	switch m.cfg.Anchor {
	case FixedOrigin, FixedOriginAndReturn:
		if a.Routes[0][0] != m.cfg.Origin {
			return Itinerary{}, fmt.Errorf("%w: day 0 does not start at the origin", ErrInternalConsistency)
		}
		if m.cfg.Anchor == FixedOriginAndReturn {
			last := a.Routes[nd-1]
			if last[len(last)-1] != m.cfg.Origin {
				return Itinerary{}, fmt.Errorf("%w: final day does not return to the origin", ErrInternalConsistency)
			}
		}
	}

	if math.Abs(total-a.Cost) > costCheckEps {
		return Itinerary{}, fmt.Errorf("%w: day costs sum to %v, engine reported %v", ErrInternalConsistency, total, a.Cost)
	}

	for d = 0; d < nd; d++ {
		m.days[d].Start = days[d].Locations[0]
		m.days[d].End = days[d].Locations[len(days[d].Locations)-1]
		m.days[d].Stops = append([]int(nil), days[d].Locations...)
	}

	return Itinerary{
		ID:        uuid.NewString(),
		Days:      days,
		TotalCost: total,
	}, nil
}
