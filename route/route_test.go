package route_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmroute/antcolony"
	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/hybrid"
	"github.com/katalvlaran/swarmroute/internal/testgrid"
	"github.com/katalvlaran/swarmroute/qlearning"
	"github.com/katalvlaran/swarmroute/route"
)

var (
	_ route.Strategy = (*antcolony.Solver)(nil)
	_ route.Strategy = (*qlearning.Solver)(nil)
	_ route.Strategy = (*hybrid.Pipeline)(nil)
)

func fixed(p citymap.Path, err error) route.Strategy {
	return route.StrategyFunc(func(*citymap.Grid) (citymap.Path, error) { return p, err })
}

func TestCompare(t *testing.T) {
	g := testgrid.Jammed5x5()
	edge := citymap.Path{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}}
	middle := citymap.Path{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}}
	boom := errors.New("boom")

	outs, err := route.Compare(g,
		route.Named{Name: "middle", Strategy: fixed(middle, nil)},
		route.Named{Name: "broken", Strategy: fixed(nil, boom)},
		route.Named{Name: "edge", Strategy: fixed(edge, nil)},
	)
	require.NoError(t, err)
	require.Len(t, outs, 3)

	assert.Equal(t, []string{"middle", "broken", "edge"}, []string{outs[0].Name, outs[1].Name, outs[2].Name})
	assert.Equal(t, 5.0, outs[0].TrafficCost)
	assert.ErrorIs(t, outs[1].Err, boom)
	assert.False(t, outs[1].OK())
	assert.Zero(t, outs[1].Cells)
	for _, o := range outs {
		assert.NotEqual(t, uuid.Nil, o.RunID)
	}
	assert.NotEqual(t, outs[0].RunID, outs[2].RunID)

	best, ok := route.Best(outs)
	require.True(t, ok)
	assert.Equal(t, "edge", best.Name, "equal length, lower traffic wins")
}

func TestCompare_Engines(t *testing.T) {
	g := testgrid.Open5x5()
	outs, err := route.Compare(g,
		route.Named{Name: "antcolony", Strategy: antcolony.New(antcolony.WithSeed(1))},
		route.Named{Name: "qlearning", Strategy: qlearning.New(qlearning.WithSeed(1), qlearning.WithEpisodes(3000))},
	)
	require.NoError(t, err)
	for _, o := range outs {
		require.NoError(t, o.Err, o.Name)
		require.NoError(t, o.Path.Validate(g), o.Name)
	}
}

func TestCompare_Empty(t *testing.T) {
	_, err := route.Compare(testgrid.Open5x5())
	assert.ErrorIs(t, err, route.ErrNoStrategies)

	_, ok := route.Best(nil)
	assert.False(t, ok)
}
