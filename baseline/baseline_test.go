package baseline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmroute/baseline"
	"github.com/katalvlaran/swarmroute/citygen"
	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/internal/testgrid"
	"github.com/katalvlaran/swarmroute/route"
)

var (
	_ route.Strategy = baseline.BFS{}
	_ route.Strategy = (*baseline.Dijkstra)(nil)
)

func TestBFS_Shortest(t *testing.T) {
	g := testgrid.Open5x5()
	p, err := baseline.BFS{}.Solve(g)
	require.NoError(t, err)
	require.NoError(t, p.Validate(g))
	assert.Equal(t, 5, p.Len())

	c := testgrid.Corridor(10)
	p, err = baseline.BFS{}.Solve(c)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Len())
}

func TestDijkstra_AvoidsJam(t *testing.T) {
	g := testgrid.Jammed5x5()
	p, err := baseline.NewDijkstra().Solve(g)
	require.NoError(t, err)
	require.NoError(t, p.Validate(g))
	assert.Equal(t, 5, p.Len())
	assert.False(t, p.Contains(citymap.Cell{X: 2, Y: 2}))

	// Without a traffic price the jam is just another cell.
	d := baseline.NewDijkstra(baseline.WithTrafficWeight(0))
	assert.Equal(t, 1.0, d.Cost(g, citymap.Cell{X: 2, Y: 2}))
}

// On generated cities the cheapest route never costs more traffic than the
// shortest one, and never has fewer cells.
func TestDijkstra_VersusBFS(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := citygen.New(citygen.WithSeed(seed)).Generate()
		require.NoError(t, err)

		short, err := baseline.BFS{}.Solve(g)
		require.NoError(t, err)
		cheap, err := baseline.NewDijkstra().Solve(g)
		require.NoError(t, err)

		require.NoError(t, short.Validate(g))
		require.NoError(t, cheap.Validate(g))
		assert.GreaterOrEqual(t, cheap.Len(), short.Len(), "seed %d", seed)
		assert.Equal(t, g.Start().Manhattan(g.Goal())+1, short.Len(), "seed %d: the perimeter ring is a Manhattan route", seed)

		d := baseline.NewDijkstra()
		var costShort, costCheap float64
		for _, c := range short[1:] {
			costShort += d.Cost(g, c)
		}
		for _, c := range cheap[1:] {
			costCheap += d.Cost(g, c)
		}
		assert.LessOrEqual(t, costCheap, costShort, "seed %d", seed)
	}
}

func TestBaseline_EdgeCases(t *testing.T) {
	strategies := map[string]route.Strategy{"bfs": baseline.BFS{}, "dijkstra": baseline.NewDijkstra()}
	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			p, err := s.Solve(testgrid.SameStartGoal())
			require.NoError(t, err)
			assert.Equal(t, citymap.Path{{X: 2, Y: 2}}, p)

			p, err = s.Solve(testgrid.Partitioned())
			assert.ErrorIs(t, err, citymap.ErrNoPath)
			assert.Nil(t, p)

			_, err = s.Solve(nil)
			assert.ErrorIs(t, err, baseline.ErrNilGrid)
		})
	}

	_, err := baseline.NewDijkstra(baseline.WithStepCost(-1)).Solve(testgrid.Open5x5())
	assert.ErrorIs(t, err, baseline.ErrNegativeCost)
}
