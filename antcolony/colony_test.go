package antcolony_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmroute/antcolony"
	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/internal/testgrid"
)

func TestSolve_OpenGridFindsShortest(t *testing.T) {
	g := testgrid.Open5x5()
	p, err := antcolony.New(antcolony.WithAnts(10), antcolony.WithSeed(7)).Solve(g)
	require.NoError(t, err)
	require.NoError(t, p.Validate(g))
	assert.Equal(t, 5, p.Len(), "manhattan distance (1,1)→(3,3) is 4 steps")
}

func TestSolve_StartEqualsGoal(t *testing.T) {
	g := testgrid.SameStartGoal()
	calls := 0
	p, err := antcolony.New(antcolony.WithOnIteration(func(antcolony.IterationStats) { calls++ })).Solve(g)
	require.NoError(t, err)
	assert.Equal(t, citymap.Path{{X: 2, Y: 2}}, p)
	assert.Zero(t, calls)
}

func TestSolve_Unreachable(t *testing.T) {
	var succ int
	p, err := antcolony.New(
		antcolony.WithIterations(10),
		antcolony.WithOnIteration(func(s antcolony.IterationStats) { succ += s.Successes }),
	).Solve(testgrid.Partitioned())
	assert.ErrorIs(t, err, citymap.ErrNoPath)
	assert.Nil(t, p)
	assert.Zero(t, succ)
}

func TestSolve_Deterministic(t *testing.T) {
	g := testgrid.Jammed5x5()
	s := antcolony.New(antcolony.WithSeed(99), antcolony.WithIterations(20))
	a, err := s.Solve(g)
	require.NoError(t, err)
	b, err := s.Solve(g)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a, b))
}

// The pheromone trajectory must not depend on how many ants walk at once.
func TestSolve_WorkersDoNotChangeResult(t *testing.T) {
	g := testgrid.Corridor(12)
	run := func(workers int) (citymap.Path, []float64) {
		var masses []float64
		p, err := antcolony.New(
			antcolony.WithSeed(5),
			antcolony.WithIterations(15),
			antcolony.WithWorkers(workers),
			antcolony.WithOnIteration(func(s antcolony.IterationStats) { masses = append(masses, s.PheromoneMass) }),
		).Solve(g)
		require.NoError(t, err)
		return p, masses
	}

	p1, m1 := run(1)
	p4, m4 := run(4)
	assert.Empty(t, cmp.Diff(p1, p4))
	assert.Equal(t, m1, m4)
}

func TestUpdatePheromone_MassBalance(t *testing.T) {
	g := testgrid.Open5x5()
	opts := antcolony.DefaultOptions()
	opts.Retention = 0.5
	c, err := antcolony.NewColony(g, opts)
	require.NoError(t, err)

	before := c.Pheromone().Sum()
	assert.Equal(t, 9.0, before, "uniform prior puts 1.0 on each of the 9 roads")

	short := citymap.Path{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}}
	long := citymap.Path{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}}
	c.UpdatePheromone([]citymap.Path{short, nil, long})

	after := c.Pheromone()
	assert.InDelta(t, 0.5*before+2, after.Sum(), 1e-12, "each successful path deposits one unit")
	assert.InDelta(t, 0.5+1.0/5+1.0/7, after.At(citymap.Cell{X: 3, Y: 2}), 1e-12)
	assert.InDelta(t, 0.5, after.At(citymap.Cell{X: 2, Y: 2})-1.0/7, 1e-12)
	assert.Zero(t, after.At(citymap.Cell{X: 0, Y: 0}), "buildings never receive pheromone")
}

func TestIterationStats_MassFollowsRetention(t *testing.T) {
	g := testgrid.Open5x5()
	var stats []antcolony.IterationStats
	_, err := antcolony.New(
		antcolony.WithAnts(6),
		antcolony.WithIterations(8),
		antcolony.WithRetention(0.8),
		antcolony.WithOnIteration(func(s antcolony.IterationStats) { stats = append(stats, s) }),
	).Solve(g)
	require.NoError(t, err)
	require.Len(t, stats, 8)

	prev := 9.0
	for _, s := range stats {
		assert.InDelta(t, 0.8*prev+float64(s.Successes), s.PheromoneMass, 1e-9)
		assert.LessOrEqual(t, s.Successes, 6)
		prev = s.PheromoneMass
	}
}

func TestNewColony_InitialPheromone(t *testing.T) {
	g := testgrid.Open5x5()
	seed := citymap.NewField(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			seed.Set(citymap.Cell{X: x, Y: y}, 0.25)
		}
	}

	opts := antcolony.DefaultOptions()
	opts.InitialPheromone = seed
	c, err := antcolony.NewColony(g, opts)
	require.NoError(t, err)

	tau := c.Pheromone()
	assert.Equal(t, 0.25, tau.At(citymap.Cell{X: 2, Y: 2}))
	assert.Zero(t, tau.At(citymap.Cell{X: 0, Y: 2}), "seed values on buildings are cleared")
	assert.Equal(t, 0.25, seed.At(citymap.Cell{X: 0, Y: 2}), "caller's field is not modified")

	opts.InitialPheromone = citymap.NewField(4, 4)
	_, err = antcolony.NewColony(g, opts)
	assert.ErrorIs(t, err, citymap.ErrDimensionMismatch)
}

func TestHeuristic(t *testing.T) {
	c, err := antcolony.NewColony(testgrid.Open5x5(), antcolony.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Heuristic(citymap.Cell{X: 3, Y: 3}))
	assert.InDelta(t, 0.5, c.Heuristic(citymap.Cell{X: 3, Y: 2}), 1e-12)
	assert.Greater(t, c.Heuristic(citymap.Cell{X: 2, Y: 2}), c.Heuristic(citymap.Cell{X: 1, Y: 1}))
}

func TestOptions_Validation(t *testing.T) {
	g := testgrid.Open5x5()
	_, err := antcolony.New().Solve(nil)
	assert.ErrorIs(t, err, antcolony.ErrNilGrid)

	cases := []struct {
		name string
		opt  antcolony.Option
		err  error
	}{
		{"Ants", antcolony.WithAnts(0), antcolony.ErrBadAnts},
		{"Iterations", antcolony.WithIterations(-3), antcolony.ErrBadIterations},
		{"Alpha", antcolony.WithExponents(-1, 2), antcolony.ErrNegativeExponent},
		{"Beta", antcolony.WithExponents(1, -2), antcolony.ErrNegativeExponent},
		{"RetentionLow", antcolony.WithRetention(-0.1), antcolony.ErrBadRetention},
		{"RetentionHigh", antcolony.WithRetention(1.1), antcolony.ErrBadRetention},
		{"Workers", antcolony.WithWorkers(-1), antcolony.ErrBadWorkers},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := antcolony.New(tc.opt).Solve(g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
