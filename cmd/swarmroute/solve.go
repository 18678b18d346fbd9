package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/export"
	"github.com/katalvlaran/swarmroute/route"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		mapFile, name, start, goal, output string
		fast                               bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Route from start to goal and write the solved snapshot",
		Long: `Route from start to goal on a new city, or on the city stored in --map.

A new city gets the full hybrid training budget; re-solving a stored city
(or passing --fast) uses the reduced budget.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, fresh, err := a.loadMap(mapFile)
			if err != nil {
				return err
			}
			if err := moveEndpoints(g, start, goal); err != nil {
				return err
			}
			if fast {
				fresh = false
			}
			s, err := a.strategy(name, fresh)
			if err != nil {
				return err
			}

			a.log.Info("solving", "strategy", name, "fresh", fresh, "start", g.Start(), "goal", g.Goal())
			out := route.Run(g, s.Named)
			if out.Err != nil && !errors.Is(out.Err, citymap.ErrNoPath) {
				return out.Err
			}

			snap := export.New(g, s.field(), out.Path)
			snap.RunID = out.RunID.String()
			snap.Strategy = name
			if output == "" {
				output = a.cfg.Output
			}
			if err := snap.WriteFile(output); err != nil {
				return err
			}

			if !out.OK() {
				a.log.Warn("no route found", "strategy", name, "duration", out.Duration)
				return &ExitError{Code: exitNoPath, Message: fmt.Sprintf("%s: no route found; snapshot written to %s", name, output)}
			}
			fmt.Fprintf(a.out, "%s: %d cells, traffic %.1f, %s, written to %s\n",
				name, out.Cells, out.TrafficCost, out.Duration.Round(time.Millisecond), output)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&mapFile, "map", "m", "", "snapshot to re-solve (default: generate a new city)")
	f.StringVarP(&name, "strategy", "s", strategyHybrid, "hybrid, qlearning, antcolony, bfs or dijkstra")
	f.BoolVar(&fast, "fast", false, "use the reduced hybrid training budget")
	f.StringVar(&start, "start", "", "start cell as x,y")
	f.StringVar(&goal, "goal", "", "goal cell as x,y")
	f.StringVarP(&output, "output", "o", "", "snapshot file (default from config)")
	return cmd
}
