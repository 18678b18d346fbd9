// Package testgrid provides small, hand-built city grids shared by the engine
// tests, examples and benchmarks.
package testgrid

import (
	"fmt"

	"github.com/katalvlaran/swarmroute/citymap"
)

// Open5x5 returns a 5×5 grid walled on its border with a fully open 3×3
// interior, start (1,1) and goal (3,3). The shortest path has 5 cells.
func Open5x5() *citymap.Grid {
	return must(citymap.NewGrid(open5x5Layout(), citymap.Cell{X: 1, Y: 1}, citymap.Cell{X: 3, Y: 3}))
}

// Jammed5x5 is Open5x5 with traffic intensity 5.0 on the centre cell (2,2).
func Jammed5x5() *citymap.Grid {
	traffic := make([][]float64, 5)
	for y := range traffic {
		traffic[y] = make([]float64, 5)
	}
	traffic[2][2] = 5.0
	return must(citymap.NewGrid(open5x5Layout(), citymap.Cell{X: 1, Y: 1}, citymap.Cell{X: 3, Y: 3}, citymap.WithTraffic(traffic)))
}

// SameStartGoal is Open5x5 with start and goal both at (2,2).
func SameStartGoal() *citymap.Grid {
	return must(citymap.NewGrid(open5x5Layout(), citymap.Cell{X: 2, Y: 2}, citymap.Cell{X: 2, Y: 2}))
}

// Partitioned returns a 7×5 grid whose middle column is solid buildings, so
// the start (1,2) and goal (5,2) lie in different districts.
func Partitioned() *citymap.Grid {
	layout := [][]int{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 1, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1},
	}
	return must(citymap.NewGrid(layout, citymap.Cell{X: 1, Y: 2}, citymap.Cell{X: 5, Y: 2}))
}

// Corridor returns a width×3 grid with a single open row between walls,
// start at the west end and goal at the east end. width must be ≥ 3.
func Corridor(width int) *citymap.Grid {
	layout := make([][]int, 3)
	for y := range layout {
		layout[y] = make([]int, width)
		for x := range layout[y] {
			if y != 1 || x == 0 || x == width-1 {
				layout[y][x] = citymap.Building
			}
		}
	}
	return must(citymap.NewGrid(layout, citymap.Cell{X: 1, Y: 1}, citymap.Cell{X: width - 2, Y: 1}))
}

func open5x5Layout() [][]int {
	return [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}
}

func must(g *citymap.Grid, err error) *citymap.Grid {
	if err != nil {
		panic(fmt.Sprintf("testgrid: %v", err))
	}
	return g
}
