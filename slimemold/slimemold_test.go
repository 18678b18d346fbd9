package slimemold_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmroute/citygen"
	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/internal/testgrid"
	"github.com/katalvlaran/swarmroute/slimemold"
)

// requireNormalized asserts the conductivity invariants on g.
func requireNormalized(t *testing.T, g *citymap.Grid, f *citymap.Field) {
	t.Helper()
	require.True(t, f.Fits(g))
	assert.Equal(t, 1.0, f.Max(), "maximum must be exactly 1.0")
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := citymap.Cell{X: x, Y: y}
			v := f.At(c)
			require.GreaterOrEqual(t, v, 0.0, "cell %v", c)
			require.LessOrEqual(t, v, 1.0, "cell %v", c)
			if !g.IsPassable(c) {
				require.Zero(t, v, "blocked cell %v must stay 0", c)
			}
		}
	}
}

func TestConductivity_Normalized(t *testing.T) {
	grids := map[string]*citymap.Grid{
		"Open5x5":     testgrid.Open5x5(),
		"Jammed5x5":   testgrid.Jammed5x5(),
		"Partitioned": testgrid.Partitioned(),
	}
	city, err := citygen.New(citygen.WithSeed(3)).Generate()
	require.NoError(t, err)
	grids["City"] = city

	for name, g := range grids {
		t.Run(name, func(t *testing.T) {
			f, err := slimemold.New(slimemold.WithSeed(11)).Conductivity(g)
			require.NoError(t, err)
			requireNormalized(t, g, f)
		})
	}
}

func TestConductivity_Deterministic(t *testing.T) {
	g, err := citygen.New(citygen.WithSeed(5)).Generate()
	require.NoError(t, err)

	opt := slimemold.New(slimemold.WithSeed(42), slimemold.WithIterations(40))
	a, err := opt.Conductivity(g)
	require.NoError(t, err)
	b, err := opt.Conductivity(g)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed on the same grid must be bit-identical")
}

func TestConductivity_TrafficDepressesInitialField(t *testing.T) {
	g := testgrid.Jammed5x5()
	f, err := slimemold.New(slimemold.WithIterations(0)).Conductivity(g)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/6.0, f.At(citymap.Cell{X: 2, Y: 2}), 1e-12)
	assert.Equal(t, 1.0, f.At(citymap.Cell{X: 1, Y: 1}))
}

func TestConductivity_StartEqualsGoal(t *testing.T) {
	g := testgrid.SameStartGoal()
	calls := 0
	f, err := slimemold.New(slimemold.WithOnIteration(func(slimemold.IterationStats) { calls++ })).Conductivity(g)
	require.NoError(t, err)
	assert.Zero(t, calls, "no iteration may run when start equals goal")
	requireNormalized(t, g, f)
}

func TestConductivity_HookAndWeightDecay(t *testing.T) {
	g := testgrid.Open5x5()
	var stats []slimemold.IterationStats
	_, err := slimemold.New(
		slimemold.WithIterations(25),
		slimemold.WithAgents(8),
		slimemold.WithOnIteration(func(s slimemold.IterationStats) { stats = append(stats, s) }),
	).Conductivity(g)
	require.NoError(t, err)

	require.Len(t, stats, 25)
	prev := math.Inf(1)
	for i, s := range stats {
		assert.Equal(t, i, s.Iteration)
		assert.LessOrEqual(t, s.Weight, prev, "w must not increase")
		assert.LessOrEqual(t, s.Moves, 8)
		prev = s.Weight
	}
	assert.Equal(t, 0.9, stats[0].Weight, "exp(0) leaves the base weight")
}

func TestConductivity_DepositsGrowVisitedCells(t *testing.T) {
	g := testgrid.Corridor(9)
	f, err := slimemold.New(slimemold.WithSeed(9), slimemold.WithAgents(20)).Conductivity(g)
	require.NoError(t, err)
	requireNormalized(t, g, f)

	// Without traffic every road starts equal; deposits must break the tie.
	var distinct = map[float64]bool{}
	for _, c := range g.FreeCells() {
		distinct[f.At(c)] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestCost(t *testing.T) {
	g := testgrid.Jammed5x5()
	o := slimemold.New()
	assert.InDelta(t, math.Sqrt2+50, o.Cost(g, 2, 2), 1e-12)
	assert.InDelta(t, math.Sqrt2+50, o.Cost(g, 2.3, 1.6), 0.6)
	assert.Equal(t, 0.0, o.Cost(g, 3, 3))
}

func TestConductivity_Errors(t *testing.T) {
	g := testgrid.Open5x5()

	_, err := slimemold.New().Conductivity(nil)
	assert.ErrorIs(t, err, slimemold.ErrNilGrid)

	cases := []struct {
		name string
		opt  slimemold.Option
		err  error
	}{
		{"Agents", slimemold.WithAgents(0), slimemold.ErrBadAgents},
		{"Iterations", slimemold.WithIterations(-1), slimemold.ErrBadIterations},
		{"Weight", slimemold.WithInitialWeight(1.5), slimemold.ErrBadWeight},
		{"Negative", func(o *slimemold.Options) { o.Deposit = -1 }, slimemold.ErrNegativeParam},
		{"Placement", func(o *slimemold.Options) { o.MaxPlacementRetries = 0 }, slimemold.ErrPlacementFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := slimemold.New(tc.opt).Conductivity(g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
