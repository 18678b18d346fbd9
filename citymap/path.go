package citymap

import "fmt"

// Path is an ordered sequence of cells beginning at the grid start.
// A nil Path means "no path". Solvers never mutate a Path after returning it.
type Path []Cell

// Len returns the number of cells in p (moves + 1).
func (p Path) Len() int { return len(p) }

// Contains reports whether c is on p.
func (p Path) Contains(c Cell) bool {
	for _, q := range p {
		if q == c {
			return true
		}
	}
	return false
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// TrafficCost returns the summed traffic intensity over every cell of p.
func (p Path) TrafficCost(g *Grid) float64 {
	var s float64
	for _, c := range p {
		s += g.Traffic(c)
	}
	return s
}

// Validate checks that p starts at g.Start(), ends at g.Goal(), visits only
// passable cells, never repeats a cell and moves one orthogonal step at a
// time. Every violation is reported as ErrInvalidPath with context.
//
// Complexity: O(len(p)).
func (p Path) Validate(g *Grid) error {
	if len(p) == 0 {
		return fmt.Errorf("empty path: %w", ErrInvalidPath)
	}
	if p[0] != g.Start() {
		return fmt.Errorf("path begins at %v, start is %v: %w", p[0], g.Start(), ErrInvalidPath)
	}
	if p[len(p)-1] != g.Goal() {
		return fmt.Errorf("path ends at %v, goal is %v: %w", p[len(p)-1], g.Goal(), ErrInvalidPath)
	}
	seen := make(map[Cell]struct{}, len(p))
	for i, c := range p {
		if !g.IsPassable(c) {
			return fmt.Errorf("cell %d %v not passable: %w", i, c, ErrInvalidPath)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("cell %d %v repeated: %w", i, c, ErrInvalidPath)
		}
		seen[c] = struct{}{}
		if i > 0 && !p[i-1].Adjacent(c) {
			return fmt.Errorf("cells %v and %v not adjacent: %w", p[i-1], c, ErrInvalidPath)
		}
	}
	return nil
}
