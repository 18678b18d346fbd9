package citymap

import (
	"errors"
)

// Sentinel errors for citymap operations.
var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("citymap: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("citymap: all rows must have the same length")
	// ErrDimensionMismatch indicates a traffic matrix or field whose shape differs from the grid.
	ErrDimensionMismatch = errors.New("citymap: dimensions do not match the grid")
	// ErrNegativeTraffic indicates a negative or NaN traffic intensity.
	ErrNegativeTraffic = errors.New("citymap: traffic intensity must be non-negative")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("citymap: cell out of bounds")
	// ErrBlockedCell indicates a start or goal placed on a building.
	ErrBlockedCell = errors.New("citymap: cell is blocked")
	// ErrNoPath indicates that a solver exhausted its budget without reaching the goal.
	ErrNoPath = errors.New("citymap: no path between start and goal")
	// ErrInvalidPath indicates a path that breaks adjacency, passability or uniqueness.
	ErrInvalidPath = errors.New("citymap: invalid path")
	// ErrZeroField indicates normalization of a field with no positive value.
	ErrZeroField = errors.New("citymap: field has no positive value")
)

// Layout cell values accepted by NewGrid.
const (
	// Road marks a free, passable cell.
	Road = 0
	// Building marks a blocked cell. Any non-zero layout value is treated as blocked.
	Building = 1
)

// Cell is a grid coordinate: X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the L1 distance between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Cell) Adjacent(o Cell) bool {
	return c.Manhattan(o) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// neighborOffsets lists the 4-connected moves in enumeration order:
// down, up, right, left.
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Option configures optional inputs of NewGrid.
type Option func(*gridConfig)

type gridConfig struct {
	traffic [][]float64
}

// WithTraffic supplies a per-cell traffic intensity matrix indexed [y][x].
// Its shape must match the layout. Without it every cell has zero traffic.
func WithTraffic(traffic [][]float64) Option {
	return func(c *gridConfig) {
		c.traffic = traffic
	}
}

// Grid is a rectangular city map. Engines treat it as read-only; only the
// owning caller changes the start/goal through SetStart / SetGoal.
// blocked and traffic are row-major (index = y*Width + x).
type Grid struct {
	Width, Height int
	blocked       []bool
	traffic       []float64
	start, goal   Cell
}
