// Command swarmroute generates traffic-laden city grids and routes across
// them with the swarm engines or the exact baselines.
//
// Usage:
//
//	swarmroute generate [-o city.json]
//	swarmroute solve    [--map city.json] [--strategy hybrid|qlearning|antcolony|bfs|dijkstra] [--fast] [--start x,y] [--goal x,y]
//	swarmroute compare  [--map city.json]
//
// Settings come from --config (YAML), .env files and SWARMROUTE_*
// variables; see internal/config.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// main is the entrypoint for the swarmroute command.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the command tree and executes it with args.
func run(out, errOut io.Writer, args []string) error {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	return cmd.Execute()
}
