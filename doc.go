// Package tspdays turns a single-day Travelling Salesman instance into a
// multi-day itinerary: the same set of locations, visited across an
// ordered sequence of days, where each day has its own travel budget and
// the location reached at the end of one day is where the next day
// begins.
//
// The module is organized in three layers, leaf first:
//
//	travel/   — the Location Graph: an immutable dense cost matrix with
//	            optional display names and strict construction-time
//	            validation (square, zero diagonal, no negative costs).
//	routing/  — a generic constraint-based routing engine: a node graph,
//	            a pairwise cost callback, per-vehicle dimension
//	            (resource) capacities, and equality constraints between
//	            route-boundary node variables. Deterministic search:
//	            heuristic first solution, 2-opt descent, then exact
//	            branch-and-bound under a soft wall-clock budget.
//	multiday/ — the multi-day model itself: one "day-vehicle" per day,
//	            a travel dimension capped by each day's budget, and a
//	            continuity constraint chaining day d's end to day d+1's
//	            start. Raw engine output is re-validated and reassembled
//	            into a day-indexed Itinerary.
//
// A small CLI lives under cmd/tspdays: it reads a JSON instance, solves
// it, and writes the itinerary (plus solve metadata) as JSON.
//
// Quick sketch — four locations over two days, budget 5 per day:
//
//	A──1──B
//	│      ╲2
//	3       C
//	 ╲     ╱1
//	   ──D──
//
//	Day 0: A → B → C   (cost 3)   sleep at C
//	Day 1: C → D       (cost 1)
//
// Every location is visited exactly once, each day stays within its
// budget, and consecutive days join at the same physical place.
package tspdays
