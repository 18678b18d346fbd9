package baseline_test

import (
	"fmt"

	"github.com/katalvlaran/swarmroute/baseline"
	"github.com/katalvlaran/swarmroute/internal/testgrid"
)

// ExampleDijkstra_Solve routes around a jammed intersection.
func ExampleDijkstra_Solve() {
	g := testgrid.Jammed5x5()
	short, _ := baseline.BFS{}.Solve(g)
	cheap, _ := baseline.NewDijkstra().Solve(g)
	fmt.Println("bfs cells:", short.Len())
	fmt.Println("dijkstra cells:", cheap.Len())
	fmt.Println("dijkstra traffic:", cheap.TrafficCost(g))
	// Output:
	// bfs cells: 5
	// dijkstra cells: 5
	// dijkstra traffic: 0
}
