// Package citymap is the shared data model for traffic-aware path search on a
// 2-D city grid: the Grid itself, per-cell scalar Fields (conductivity,
// pheromone) and Paths.
//
// What:
//
//   - Grid wraps a rectangular layout of road (free) and building (blocked)
//     cells, a non-negative traffic intensity per cell, and a start/goal pair.
//   - Field stores one float64 per cell in row-major order.
//   - Path is an ordered sequence of distinct, adjacent, free cells.
//
// Why:
//
//   - The search engines (slimemold, antcolony, qlearning, hybrid) only read
//     a Grid. Generators, exporters and renderers only exchange Grids,
//     Fields and Paths with them.
//
// Coordinates:
//
//   - Cell{X, Y}: X is the column (0..Width-1), Y the row (0..Height-1).
//   - Row-major index: Y*Width + X (see Index / Coordinate).
//
// Complexity:
//
//   - NewGrid:          O(W×H) time and memory (deep copy).
//   - Neighbors:        O(1).
//   - Reachable:        O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: layout has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensionMismatch: traffic matrix shape differs from the layout.
//   - ErrNegativeTraffic: a traffic intensity is negative or NaN.
//   - ErrOutOfBounds / ErrBlockedCell: start or goal rejected.
//   - ErrNoPath: a solver found no route.
//   - ErrInvalidPath: Path.Validate detected a broken path.
//   - ErrZeroField: Field.Normalize on a field whose maximum is not positive.
package citymap
