package citymap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmroute/citymap"
)

// TestConnectedComponents_TwoDistricts tests ConnectedComponents on a 4×3
// grid split by a column of buildings.
//
// Layout (1 = building, 0 = road):
//
//	0 0 1 0
//	0 0 1 0
//	0 0 1 0
//
// Expected: 2 districts of sizes 6 and 3.
func TestConnectedComponents_TwoDistricts(t *testing.T) {
	g, err := citymap.NewGrid([][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	}, citymap.Cell{}, citymap.Cell{X: 3, Y: 2})
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{3, 6}, sizes)
}

// TestReachable covers same-district, cross-district and blocked queries.
func TestReachable(t *testing.T) {
	g, err := citymap.NewGrid([][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	}, citymap.Cell{}, citymap.Cell{X: 3, Y: 2})
	require.NoError(t, err)

	assert.True(t, g.Reachable(citymap.Cell{}, citymap.Cell{X: 1, Y: 2}))
	assert.True(t, g.Reachable(citymap.Cell{X: 3}, citymap.Cell{X: 3, Y: 2}))
	assert.True(t, g.Reachable(citymap.Cell{}, citymap.Cell{}))
	assert.False(t, g.Reachable(g.Start(), g.Goal()))
	assert.False(t, g.Reachable(citymap.Cell{}, citymap.Cell{X: 2}))
}
