package citymap_test

import (
	"fmt"

	"github.com/katalvlaran/swarmroute/citymap"
)

// ExampleNewGrid builds a small city block, queries neighbors and traffic,
// and moves the goal through the validated setter.
func ExampleNewGrid() {
	layout := [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}
	traffic := [][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 5, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	g, err := citymap.NewGrid(layout, citymap.Cell{X: 1, Y: 1}, citymap.Cell{X: 3, Y: 3}, citymap.WithTraffic(traffic))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("neighbors of start:", g.Neighbors(g.Start()))
	fmt.Println("traffic at (2,1):", g.Traffic(citymap.Cell{X: 2, Y: 1}))
	fmt.Println("move goal into building:", g.SetGoal(citymap.Cell{X: 2, Y: 2}))
	fmt.Println("reachable:", g.Reachable(g.Start(), g.Goal()))

	// Output:
	// neighbors of start: [{1 2} {2 1}]
	// traffic at (2,1): 5
	// move goal into building: goal {2 2}: citymap: cell is blocked
	// reachable: true
}
