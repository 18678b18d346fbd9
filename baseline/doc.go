// Package baseline provides exact, deterministic reference routers for a
// city grid: a breadth-first shortest route that ignores traffic, and a
// Dijkstra route that prices every entered cell by
//
//	StepCost + TrafficWeight × traffic(cell)
//
// Both implement route.Strategy, so they can be compared against the
// stochastic engines on the same grid, and both return citymap.ErrNoPath
// when the goal lies in another district.
//
// Complexity:
//
//   - BFS:      O(W·H) time and memory.
//   - Dijkstra: O(W·H·log(W·H)) time, O(W·H) memory (lazy decrease-key heap).
package baseline
