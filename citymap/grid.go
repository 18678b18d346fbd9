package citymap

import (
	"fmt"
	"math"
)

// NewGrid constructs a Grid from a non-empty, rectangular layout indexed
// [y][x], where Road (0) is free and any other value is blocked.
// It deep-copies every input so later mutation by the caller has no effect.
//
// Returns ErrEmptyGrid if layout has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrDimensionMismatch or
// ErrNegativeTraffic for a bad traffic matrix, and ErrOutOfBounds /
// ErrBlockedCell if start or goal is not a free in-bounds cell.
// Complexity: O(W×H) time and memory.
func NewGrid(layout [][]int, start, goal Cell, opts ...Option) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(layout), len(layout[0])
	for _, row := range layout {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{
		Width:   w,
		Height:  h,
		blocked: make([]bool, w*h),
		traffic: make([]float64, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.blocked[g.Index(Cell{x, y})] = layout[y][x] != Road
		}
	}

	if cfg.traffic != nil {
		if len(cfg.traffic) != h {
			return nil, fmt.Errorf("traffic rows %d, grid rows %d: %w", len(cfg.traffic), h, ErrDimensionMismatch)
		}
		for y, row := range cfg.traffic {
			if len(row) != w {
				return nil, fmt.Errorf("traffic row %d has %d columns: %w", y, len(row), ErrDimensionMismatch)
			}
			for x, v := range row {
				if v < 0 || math.IsNaN(v) {
					return nil, fmt.Errorf("traffic at (%d,%d) = %v: %w", x, y, v, ErrNegativeTraffic)
				}
				g.traffic[g.Index(Cell{x, y})] = v
			}
		}
	}

	if err := g.checkFree(start); err != nil {
		return nil, fmt.Errorf("start %v: %w", start, err)
	}
	if err := g.checkFree(goal); err != nil {
		return nil, fmt.Errorf("goal %v: %w", goal, err)
	}
	g.start, g.goal = start, goal

	return g, nil
}

// checkFree returns ErrOutOfBounds or ErrBlockedCell when c cannot host a
// start or goal.
func (g *Grid) checkFree(c Cell) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.blocked[g.Index(c)] {
		return ErrBlockedCell
	}
	return nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsPassable reports whether c is in bounds and not blocked.
// Complexity: O(1).
func (g *Grid) IsPassable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.Index(c)]
}

// Neighbors returns the passable, in-bounds 4-neighbors of c in the fixed
// order down, up, right, left.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Traffic returns the traffic intensity of c, or 0 when c is out of bounds.
func (g *Grid) Traffic(c Cell) float64 {
	if !g.InBounds(c) {
		return 0
	}
	return g.traffic[g.Index(c)]
}

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// SetStart moves the start to c after checking it is a free in-bounds cell.
// On error the previous start is kept.
func (g *Grid) SetStart(c Cell) error {
	if err := g.checkFree(c); err != nil {
		return fmt.Errorf("start %v: %w", c, err)
	}
	g.start = c
	return nil
}

// SetGoal moves the goal to c after checking it is a free in-bounds cell.
// On error the previous goal is kept.
func (g *Grid) SetGoal(c Cell) error {
	if err := g.checkFree(c); err != nil {
		return fmt.Errorf("goal %v: %w", c, err)
	}
	g.goal = c
	return nil
}

// FreeCells returns every passable cell in row-major order.
func (g *Grid) FreeCells() []Cell {
	out := make([]Cell, 0, len(g.blocked))
	for i, b := range g.blocked {
		if !b {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Layout returns a fresh [y][x] copy of the layout with Road / Building values.
func (g *Grid) Layout() [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		out[y] = make([]int, g.Width)
		for x := range out[y] {
			if g.blocked[g.Index(Cell{x, y})] {
				out[y][x] = Building
			}
		}
	}
	return out
}

// TrafficMatrix returns a fresh [y][x] copy of the traffic intensities.
func (g *Grid) TrafficMatrix() [][]float64 {
	out := make([][]float64, g.Height)
	for y := range out {
		out[y] = make([]float64, g.Width)
		copy(out[y], g.traffic[y*g.Width:(y+1)*g.Width])
	}
	return out
}

// Index maps c to a row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}
