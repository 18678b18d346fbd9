package hybrid

import (
	"fmt"

	"github.com/katalvlaran/swarmroute/antcolony"
	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/internal/logging"
	"github.com/katalvlaran/swarmroute/qlearning"
	"github.com/katalvlaran/swarmroute/slimemold"
)

// Pipeline runs slime mold conductivity followed by a finisher.
type Pipeline struct {
	opts Options
}

// New returns a Pipeline starting from DefaultOptions with opts applied.
func New(opts ...Option) *Pipeline {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o}
}

// NewWithOptions returns a Pipeline using o verbatim.
func NewWithOptions(o Options) *Pipeline {
	return &Pipeline{opts: o}
}

// Options returns a copy of the pipeline configuration.
func (p *Pipeline) Options() Options { return p.opts }

// Solve runs the pipeline and returns only the path.
func (p *Pipeline) Solve(g *citymap.Grid) (citymap.Path, error) {
	res, err := p.Run(g)
	return res.Path, err
}

// Run executes both phases on g. A phase-2 failure (typically
// citymap.ErrNoPath) is returned together with the phase-1 conductivity.
func (p *Pipeline) Run(g *citymap.Grid) (Result, error) {
	res := Result{Finisher: p.opts.Finisher}
	if g == nil {
		return res, ErrNilGrid
	}
	if p.opts.Finisher != FinishQLearning && p.opts.Finisher != FinishAntColony {
		return res, ErrBadFinisher
	}
	if p.opts.ShapingWeight < 0 {
		return res, ErrBadShapingWeight
	}
	log := logging.OrDiscard(p.opts.Logger)

	log.Info("phase 1: slime mold conductivity",
		"agents", p.opts.Slime.Agents, "iterations", p.opts.Slime.Iterations)
	field, err := slimemold.NewWithOptions(p.opts.Slime).Conductivity(g)
	if err != nil {
		return res, fmt.Errorf("hybrid: conductivity: %w", err)
	}
	res.Conductivity = field

	var path citymap.Path
	switch p.opts.Finisher {
	case FinishAntColony:
		ants := p.opts.Ants
		ants.InitialPheromone = field
		log.Info("phase 2: ant colony", "ants", ants.Ants, "iterations", ants.Iterations)
		path, err = antcolony.NewWithOptions(ants).Solve(g)
	default:
		learner := p.opts.Learner
		learner.Reward.Shaper = qlearning.FieldShaper{Field: field, Weight: p.opts.ShapingWeight}
		log.Info("phase 2: q-learning", "episodes", learner.Episodes)
		path, err = qlearning.NewWithOptions(learner).Solve(g)
	}
	if err != nil {
		return res, fmt.Errorf("hybrid: %s: %w", p.opts.Finisher, err)
	}

	res.Path = path
	log.Info("route found", "finisher", p.opts.Finisher.String(), "cells", path.Len())
	return res, nil
}
