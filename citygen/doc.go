// Package citygen generates synthetic Manhattan-style city grids with
// traffic jams, ready for the routing engines.
//
// Layout recipe (all coordinates row/column, seeded RNG):
//
//  1. Start from solid buildings.
//  2. Carve arteries: every ArterySpacing-th row and column from index 1.
//  3. Carve Alleys random short alleys (3–8 cells, horizontal or vertical)
//     to break up the blocks.
//  4. Carve the inner perimeter ring (row/column 1 and H-2/W-2), which also
//     frees start (1,1) and goal (W-2,H-2).
//  5. Lay TrafficLines jams of TrafficIntensity, 4–8 cells along a road,
//     keeping SafeRadius (Manhattan) clear around start and goal. Placement
//     gives up after MaxAttempts draws.
//
// Even dimensions are bumped to the next odd value so that the perimeter
// ring and the arteries line up.
//
// The same seed and options always produce the same grid.
package citygen
