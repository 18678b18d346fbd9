package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swarmroute/route"
)

func (a *app) compareCmd() *cobra.Command {
	var (
		mapFile, start, goal string
		names                []string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several strategies on the same city and tabulate the routes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, fresh, err := a.loadMap(mapFile)
			if err != nil {
				return err
			}
			if err := moveEndpoints(g, start, goal); err != nil {
				return err
			}

			named := make([]route.Named, 0, len(names))
			for _, n := range names {
				s, err := a.strategy(n, fresh)
				if err != nil {
					return err
				}
				named = append(named, s.Named)
			}
			outs, err := route.Compare(g, named...)
			if err != nil {
				return usageError("%v", err)
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STRATEGY\tCELLS\tTRAFFIC\tDURATION\tRESULT")
			for _, o := range outs {
				result := "ok"
				switch {
				case o.Err != nil:
					result = o.Err.Error()
				case !o.OK():
					result = "no route"
				}
				fmt.Fprintf(tw, "%s\t%d\t%.1f\t%s\t%s\n", o.Name, o.Cells, o.TrafficCost, o.Duration.Round(time.Millisecond), result)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			best, ok := route.Best(outs)
			if !ok {
				return &ExitError{Code: exitNoPath, Message: "no strategy found a route"}
			}
			fmt.Fprintf(a.out, "best: %s\n", best.Name)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&mapFile, "map", "m", "", "snapshot to route on (default: generate a new city)")
	f.StringSliceVarP(&names, "strategy", "s", strategyNames, "strategies to compare")
	f.StringVar(&start, "start", "", "start cell as x,y")
	f.StringVar(&goal, "goal", "", "goal cell as x,y")
	return cmd
}
