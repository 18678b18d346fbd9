package antcolony_test

import (
	"fmt"

	"github.com/katalvlaran/swarmroute/antcolony"
	"github.com/katalvlaran/swarmroute/internal/testgrid"
)

// ExampleSolver_Solve routes across an open 3×3 block. Any shortest route
// from (1,1) to (3,3) visits five cells.
func ExampleSolver_Solve() {
	g := testgrid.Open5x5()
	p, err := antcolony.New(antcolony.WithSeed(1)).Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", p.Len())
	fmt.Println("valid:", p.Validate(g) == nil)
	// Output:
	// cells: 5
	// valid: true
}
