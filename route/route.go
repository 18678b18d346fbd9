// Package route unifies the path-search engines behind one Strategy
// interface so callers can swap, wrap and compare them on the same grid.
package route

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/swarmroute/citymap"
)

// ErrNoStrategies indicates a Compare call without strategies.
var ErrNoStrategies = errors.New("route: no strategies to compare")

// Strategy finds a start→goal path on a grid. Implementations return
// citymap.ErrNoPath when their budget runs out without a route.
//
// *antcolony.Solver, *qlearning.Solver, *hybrid.Pipeline, baseline.BFS and
// *baseline.Dijkstra implement it.
type Strategy interface {
	Solve(g *citymap.Grid) (citymap.Path, error)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(g *citymap.Grid) (citymap.Path, error)

// Solve calls f(g).
func (f StrategyFunc) Solve(g *citymap.Grid) (citymap.Path, error) { return f(g) }

// Named labels a Strategy for reporting.
type Named struct {
	Name string
	Strategy
}

// Outcome is the result of one strategy on one grid.
type Outcome struct {
	RunID       uuid.UUID
	Name        string
	Path        citymap.Path
	Cells       int
	TrafficCost float64
	Duration    time.Duration
	Err         error
}

// OK reports whether the strategy produced a path.
func (o Outcome) OK() bool { return o.Err == nil && o.Path != nil }

// Run solves g with s and measures it.
func Run(g *citymap.Grid, s Named) Outcome {
	out := Outcome{RunID: uuid.New(), Name: s.Name}
	began := time.Now()
	out.Path, out.Err = s.Solve(g)
	out.Duration = time.Since(began)
	if out.Err == nil && out.Path != nil {
		out.Cells = out.Path.Len()
		out.TrafficCost = out.Path.TrafficCost(g)
	}
	return out
}

// Compare runs every strategy on g in order. A failing strategy does not stop
// the others; its error is kept in its Outcome.
func Compare(g *citymap.Grid, strategies ...Named) ([]Outcome, error) {
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}
	outs := make([]Outcome, 0, len(strategies))
	for _, s := range strategies {
		outs = append(outs, Run(g, s))
	}
	return outs, nil
}

// Best picks the successful outcome with the fewest cells, breaking ties by
// lower traffic cost and then by order. It reports false when none succeeded.
func Best(outs []Outcome) (Outcome, bool) {
	var best Outcome
	found := false
	for _, o := range outs {
		if !o.OK() {
			continue
		}
		if !found || o.Cells < best.Cells || (o.Cells == best.Cells && o.TrafficCost < best.TrafficCost) {
			best, found = o, true
		}
	}
	return best, found
}
