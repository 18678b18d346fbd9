package baseline

import "github.com/katalvlaran/swarmroute/citymap"

// BFS is the traffic-blind shortest route. The zero value is ready to use.
type BFS struct{}

// Solve returns a route with the fewest cells from start to goal.
// Neighbors are expanded in citymap order, so ties always resolve the same way.
func (BFS) Solve(g *citymap.Grid) (citymap.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return citymap.Path{start}, nil
	}

	parent := make([]int, g.Width*g.Height)
	for i := range parent {
		parent[i] = -1
	}
	s := g.Index(start)
	parent[s] = s

	queue := []citymap.Cell{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			vi := g.Index(v)
			if parent[vi] != -1 {
				continue
			}
			parent[vi] = g.Index(u)
			if v == goal {
				return unwind(g, parent, vi), nil
			}
			queue = append(queue, v)
		}
	}
	return nil, citymap.ErrNoPath
}

// unwind follows parent links from idx back to the start.
func unwind(g *citymap.Grid, parent []int, idx int) citymap.Path {
	var rev citymap.Path
	for {
		rev = append(rev, g.Coordinate(idx))
		if parent[idx] == idx {
			break
		}
		idx = parent[idx]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
