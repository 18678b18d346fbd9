package qlearning

import "github.com/katalvlaran/swarmroute/citymap"

// Solver builds a fresh Learner for every grid it solves.
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

// Solve trains a new Learner on g and returns its greedy path.
func (s *Solver) Solve(g *citymap.Grid) (citymap.Path, error) {
	l, err := NewLearner(g, s.opts)
	if err != nil {
		return nil, err
	}
	return l.Solve()
}
