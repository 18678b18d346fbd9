package citymap

// ConnectedComponents finds all contiguous regions of free cells under
// 4-connectivity. Each component is a slice of row-major indices in BFS
// order; components appear in row-major order of their first cell.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int

	for i0, b := range g.blocked {
		if b || seen[i0] {
			continue
		}
		seen[i0] = true
		comp := g.flood(i0, seen)
		comps = append(comps, comp)
	}
	return comps
}

// flood collects every free cell reachable from the row-major index i0,
// marking them in seen. i0 must already be marked.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range neighborOffsets {
			v := u.Add(d[0], d[1])
			if !g.IsPassable(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}

// Reachable reports whether b can be reached from a over free cells.
// Both cells must be passable; otherwise it returns false.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (g *Grid) Reachable(a, b Cell) bool {
	if !g.IsPassable(a) || !g.IsPassable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.Width*g.Height)
	ia := g.Index(a)
	seen[ia] = true
	g.flood(ia, seen)
	return seen[g.Index(b)]
}
