package antcolony

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/internal/logging"
	"github.com/katalvlaran/swarmroute/internal/rng"
)

// Solver is the reusable, configuration-only front end of the colony.
// Every Solve call builds a fresh Colony, so a Solver may serve many grids.
type Solver struct {
	opts Options
}

// New returns a Solver starting from DefaultOptions with opts applied.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{opts: o}
}

// NewWithOptions returns a Solver using o verbatim.
func NewWithOptions(o Options) *Solver {
	return &Solver{opts: o}
}

// Options returns a copy of the solver configuration.
func (s *Solver) Options() Options { return s.opts }

// Solve runs a fresh colony on g and returns its best path.
func (s *Solver) Solve(g *citymap.Grid) (citymap.Path, error) {
	c, err := NewColony(g, s.opts)
	if err != nil {
		return nil, err
	}
	return c.Run()
}

// Colony is one run of the algorithm on one grid: the pheromone field and
// the best path found so far. A Colony is not safe for concurrent use; its
// own ant workers are coordinated internally.
type Colony struct {
	grid      *citymap.Grid
	opts      Options
	pheromone *citymap.Field
	best      citymap.Path
}

// NewColony validates g and opts and initializes the pheromone field, either
// uniformly (1.0 on roads) or from opts.InitialPheromone.
func NewColony(g *citymap.Grid, opts Options) (*Colony, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var tau *citymap.Field
	if opts.InitialPheromone != nil {
		tau = opts.InitialPheromone.Clone()
		if err := tau.ZeroBlocked(g); err != nil {
			return nil, fmt.Errorf("initial pheromone: %w", err)
		}
	} else {
		tau = citymap.NewFieldFor(g, 1.0)
	}

	return &Colony{grid: g, opts: opts, pheromone: tau}, nil
}

// Pheromone returns a copy of the current pheromone field.
func (c *Colony) Pheromone() *citymap.Field { return c.pheromone.Clone() }

// Best returns a copy of the shortest path found so far, or nil.
func (c *Colony) Best() citymap.Path { return c.best.Clone() }

// Heuristic returns η(n) = 1/(d+1), d being the Euclidean distance from n to the goal.
func (c *Colony) Heuristic(n citymap.Cell) float64 {
	goal := c.grid.Goal()
	dx, dy := float64(n.X-goal.X), float64(n.Y-goal.Y)
	return 1 / (math.Sqrt(dx*dx+dy*dy) + 1)
}

// Run executes Iterations rounds of construction and pheromone update and
// returns the shortest successful path, or citymap.ErrNoPath.
//
// When start equals goal the single-cell path is returned without iterating.
func (c *Colony) Run() (citymap.Path, error) {
	start := c.grid.Start()
	if start == c.grid.Goal() {
		c.best = citymap.Path{start}
		return c.best.Clone(), nil
	}

	log := logging.OrDiscard(c.opts.Logger)
	base := rng.FromSeed(c.opts.Seed)
	paths := make([]citymap.Path, c.opts.Ants)
	streams := make([]*rand.Rand, c.opts.Ants)

	for it := 0; it < c.opts.Iterations; it++ {
		for a := range streams {
			streams[a] = rng.Derive(base, uint64(a))
		}
		c.constructAll(streams, paths)

		successes := 0
		for _, p := range paths {
			if p == nil {
				continue
			}
			successes++
			if c.best == nil || len(p) < len(c.best) {
				c.best = p
			}
		}
		c.UpdatePheromone(paths)

		stats := IterationStats{
			Iteration:     it,
			Successes:     successes,
			BestLength:    len(c.best),
			PheromoneMass: c.pheromone.Sum(),
		}
		log.Debug("ant colony iteration",
			"iteration", it+1, "successes", successes, "best_len", stats.BestLength, "mass", stats.PheromoneMass)
		if c.opts.OnIteration != nil {
			c.opts.OnIteration(stats)
		}
	}

	if c.best == nil {
		return nil, citymap.ErrNoPath
	}
	return c.best.Clone(), nil
}

// constructAll walks one ant per stream and stores the outcome in paths[i]
// (nil for a failed ant). With more than one worker the ants run
// concurrently; the pheromone field is read-only meanwhile.
func (c *Colony) constructAll(streams []*rand.Rand, paths []citymap.Path) {
	if c.opts.Workers <= 1 {
		for i, r := range streams {
			paths[i] = c.Construct(r)
		}
		return
	}

	var eg errgroup.Group
	eg.SetLimit(c.opts.Workers)
	for i, r := range streams {
		i, r := i, r // per-iteration copies; module targets go 1.21 loop semantics
		eg.Go(func() error {
			paths[i] = c.Construct(r)
			return nil
		})
	}
	_ = eg.Wait() // ants never fail with an error, only with a nil path
}

// Construct walks a single ant from start using r and returns its path, or
// nil if the ant got stuck or exceeded Width×Height steps.
func (c *Colony) Construct(r *rand.Rand) citymap.Path {
	g := c.grid
	start, goal := g.Start(), g.Goal()
	visited := make([]bool, g.Width*g.Height)
	visited[g.Index(start)] = true

	path := citymap.Path{start}
	cur := start
	limit := g.Width * g.Height
	for steps := 0; cur != goal && steps < limit; steps++ {
		next, ok := c.choose(r, cur, visited)
		if !ok {
			return nil
		}
		visited[g.Index(next)] = true
		path = append(path, next)
		cur = next
	}
	if cur != goal {
		return nil
	}
	return path
}

// choose draws the next cell among the unvisited passable neighbors of cur.
func (c *Colony) choose(r *rand.Rand, cur citymap.Cell, visited []bool) (citymap.Cell, bool) {
	var (
		cands   [4]citymap.Cell
		weights [4]float64
		n       int
	)
	for _, nb := range c.grid.Neighbors(cur) {
		if visited[c.grid.Index(nb)] {
			continue
		}
		cands[n] = nb
		weights[n] = math.Pow(c.pheromone.At(nb), c.opts.Alpha) * math.Pow(c.Heuristic(nb), c.opts.Beta)
		n++
	}
	if n == 0 {
		return citymap.Cell{}, false
	}
	return cands[rng.Roulette(r, weights[:n])], true
}

// UpdatePheromone evaporates the field by Retention and then lets every
// non-nil path deposit 1/len(path) on each of its cells.
func (c *Colony) UpdatePheromone(paths []citymap.Path) {
	c.pheromone.Scale(c.opts.Retention)
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		d := 1 / float64(len(p))
		for _, cell := range p {
			c.pheromone.Add(cell, d)
		}
	}
}
