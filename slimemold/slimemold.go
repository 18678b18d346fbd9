package slimemold

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/internal/logging"
	"github.com/katalvlaran/swarmroute/internal/rng"
)

// Optimizer runs the slime mold swarm. It holds only configuration; every
// call to Conductivity owns its agents and field exclusively, so one
// Optimizer may serve many grids.
type Optimizer struct {
	opts Options
}

// New returns an Optimizer starting from DefaultOptions with opts applied.
func New(opts ...Option) *Optimizer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Optimizer{opts: o}
}

// NewWithOptions returns an Optimizer using o verbatim.
func NewWithOptions(o Options) *Optimizer {
	return &Optimizer{opts: o}
}

// Options returns a copy of the optimizer configuration.
func (o *Optimizer) Options() Options { return o.opts }

// agent is a swarm member with its cost for the current ranking.
type agent struct {
	pos  citymap.Cell
	cost float64
}

// Cost evaluates the objective at the (possibly fractional) position (x, y):
// Euclidean distance to the goal plus TrafficWeight × the traffic intensity
// of the rounded cell. Out-of-bounds cells carry no traffic.
func (o *Optimizer) Cost(g *citymap.Grid, x, y float64) float64 {
	goal := g.Goal()
	dx, dy := x-float64(goal.X), y-float64(goal.Y)
	c := citymap.Cell{X: int(math.Round(x)), Y: int(math.Round(y))}
	return math.Sqrt(dx*dx+dy*dy) + g.Traffic(c)*o.opts.TrafficWeight
}

// Conductivity runs the swarm on g and returns the normalized conductivity
// field: values in [0,1], 0 on blocked cells, maximum exactly 1.0.
//
// Steps:
//  1. Validate g and Options.
//  2. Initialize conductivity to 1/(1+traffic) on roads, 0 on buildings.
//  3. If start == goal, normalize and return without iterating.
//  4. Place Agents on random free cells (bounded reject-and-retry).
//  5. Run exactly Iterations rounds of rank → decay w → move/deposit.
//  6. Normalize by the field maximum.
//
// Complexity: O(I·A·log A + W·H) time, O(W·H + A) memory.
func (o *Optimizer) Conductivity(g *citymap.Grid) (*citymap.Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := o.opts.validate(); err != nil {
		return nil, err
	}
	log := logging.OrDiscard(o.opts.Logger)

	field := citymap.NewField(g.Width, g.Height)
	for _, c := range g.FreeCells() {
		field.Set(c, 1/(1+g.Traffic(c)))
	}

	if g.Start() == g.Goal() {
		log.Debug("slime mold: start equals goal, skipping iterations")
		if err := field.Normalize(); err != nil {
			return nil, err
		}
		return field, nil
	}

	r := rng.FromSeed(o.opts.Seed)
	agents, err := o.place(g, r)
	if err != nil {
		return nil, err
	}

	w := o.opts.InitialWeight
	for t := 0; t < o.opts.Iterations; t++ {
		for i := range agents {
			agents[i].cost = o.Cost(g, float64(agents[i].pos.X), float64(agents[i].pos.Y))
		}
		slices.SortStableFunc(agents, func(a, b agent) int { return cmp.Compare(a.cost, b.cost) })
		best := agents[0]

		w *= math.Exp(-float64(t) / float64(o.opts.Iterations))

		moves := 0
		for j := range agents {
			next := o.step(g, r, agents, j, best.pos, w)
			if g.IsPassable(next) {
				field.Add(next, o.opts.Deposit)
				agents[j].pos = next
				moves++
			}
		}

		log.Debug("slime mold iteration",
			"iteration", t+1, "weight", w, "best_cost", best.cost, "moves", moves)
		if o.opts.OnIteration != nil {
			o.opts.OnIteration(IterationStats{Iteration: t, Weight: w, BestCost: best.cost, Moves: moves})
		}
	}

	if err := field.Normalize(); err != nil {
		return nil, err
	}
	return field, nil
}

// step proposes the next cell for agents[j]: with probability w a random
// fraction of the way toward ref, otherwise an ExploreStep-scaled random
// fraction toward a random peer. The result is clamped and rounded.
func (o *Optimizer) step(g *citymap.Grid, r *rand.Rand, agents []agent, j int, ref citymap.Cell, w float64) citymap.Cell {
	pos := agents[j].pos
	var target citymap.Cell
	var scale float64
	if r.Float64() < w {
		target = ref
		scale = r.Float64()
	} else {
		target = agents[rng.Pick(r, len(agents))].pos
		scale = o.opts.ExploreStep * r.Float64()
	}
	x := float64(pos.X) + scale*float64(target.X-pos.X)
	y := float64(pos.Y) + scale*float64(target.Y-pos.Y)
	return citymap.Cell{
		X: int(math.Round(clamp(x, 0, float64(g.Width-1)))),
		Y: int(math.Round(clamp(y, 0, float64(g.Height-1)))),
	}
}

// place draws a free start cell for every agent.
func (o *Optimizer) place(g *citymap.Grid, r *rand.Rand) ([]agent, error) {
	agents := make([]agent, o.opts.Agents)
	for i := range agents {
		placed := false
		for try := 0; try < o.opts.MaxPlacementRetries; try++ {
			c := citymap.Cell{X: r.Intn(g.Width), Y: r.Intn(g.Height)}
			if g.IsPassable(c) {
				agents[i].pos = c
				placed = true
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("agent %d after %d draws: %w", i, o.opts.MaxPlacementRetries, ErrPlacementFailed)
		}
	}
	return agents, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
