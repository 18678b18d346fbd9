package main

import (
	"github.com/katalvlaran/swarmroute/antcolony"
	"github.com/katalvlaran/swarmroute/baseline"
	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/hybrid"
	"github.com/katalvlaran/swarmroute/qlearning"
	"github.com/katalvlaran/swarmroute/route"
)

// Strategy names accepted by --strategy.
const (
	strategyHybrid    = "hybrid"
	strategyQLearning = "qlearning"
	strategyAntColony = "antcolony"
	strategyBFS       = "bfs"
	strategyDijkstra  = "dijkstra"
)

var strategyNames = []string{strategyHybrid, strategyQLearning, strategyAntColony, strategyBFS, strategyDijkstra}

// runStrategy is a named strategy plus, for the hybrid pipeline, access to
// the conductivity field of its last run.
type runStrategy struct {
	route.Named
	conductivity func() *citymap.Field
}

// strategy builds the named strategy from the configuration. fresh selects
// the hybrid budget for a newly generated map.
func (a *app) strategy(name string, fresh bool) (runStrategy, error) {
	switch name {
	case strategyHybrid:
		opts, err := a.cfg.PipelineOptions(a.log, fresh)
		if err != nil {
			return runStrategy{}, usageError("%v", err)
		}
		p := hybrid.NewWithOptions(opts)
		var last *citymap.Field
		solve := route.StrategyFunc(func(g *citymap.Grid) (citymap.Path, error) {
			res, err := p.Run(g)
			last = res.Conductivity
			return res.Path, err
		})
		return runStrategy{
			Named:        route.Named{Name: name, Strategy: solve},
			conductivity: func() *citymap.Field { return last },
		}, nil
	case strategyQLearning:
		return runStrategy{Named: route.Named{Name: name, Strategy: qlearning.NewWithOptions(a.cfg.LearnerOptions(a.log))}}, nil
	case strategyAntColony:
		return runStrategy{Named: route.Named{Name: name, Strategy: antcolony.NewWithOptions(a.cfg.AntOptions(a.log))}}, nil
	case strategyBFS:
		return runStrategy{Named: route.Named{Name: name, Strategy: baseline.BFS{}}}, nil
	case strategyDijkstra:
		return runStrategy{Named: route.Named{Name: name, Strategy: baseline.NewDijkstra()}}, nil
	}
	return runStrategy{}, usageError("unknown strategy %q (want one of %v)", name, strategyNames)
}

// field returns the conductivity of the last run, or nil.
func (s runStrategy) field() *citymap.Field {
	if s.conductivity == nil {
		return nil
	}
	return s.conductivity()
}
