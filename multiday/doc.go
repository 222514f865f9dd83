// Package multiday plans multi-day traveling-salesman itineraries on
// top of the generic engine in package routing.
//
// The transformation, not the search, is the point of this package:
// a single-day tour over N locations becomes D coupled day-routes by
// modeling each day as one vehicle, then adding
//
//   - a "travel" dimension capping each day's accumulated cost at its
//     budget;
//   - continuity equalities End(d) == Start(d+1), so each day resumes
//     exactly where the previous one stopped (the overnight stay);
//   - anchor pins per the configured mode: nothing (free start and
//     end), the origin on day 0's start, or additionally the origin on
//     the last day's end (round trip).
//
// Together with the engine's global visit-once rule this yields a
// partition of all locations into consecutive days, each within budget.
//
// Workflow:
//
//	mat, _ := travel.NewMatrix(costs)
//	model, _ := multiday.NewModel(mat, multiday.Config{
//		Days:   3,
//		Budget: 8,
//		Anchor: multiday.FixedOrigin,
//		Origin: 0,
//	})
//	it, err := model.Solve(routing.DefaultSearchParams())
//
// Errors carry one of three classes, matched with errors.Is:
// ErrConfiguration (malformed input), ErrNoSolution (proven infeasible
// or out of time), ErrInternalConsistency (the extractor's re-checks
// caught a violated invariant; indicates a defect, not bad input).
package multiday
