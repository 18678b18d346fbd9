package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swarmroute/citygen"
	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/export"
	"github.com/katalvlaran/swarmroute/internal/config"
	"github.com/katalvlaran/swarmroute/internal/logging"
)

// app carries the state shared by every subcommand.
type app struct {
	out, errOut io.Writer

	cfgPath   string
	envFiles  []string
	logLevel  string
	logFormat string
	seed      int64

	cfg config.Config
	log *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:               "swarmroute",
		Short:             "Route through traffic-laden city grids with swarm and reinforcement learning",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	pf.StringSliceVar(&a.envFiles, "env-file", nil, ".env files to load (default .env)")
	pf.StringVar(&a.logLevel, "log-level", "info", "logging level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log output format: text or json")
	pf.Int64Var(&a.seed, "seed", 0, "RNG seed shared by the generator and every engine (0 = default)")

	root.AddCommand(a.generateCmd(), a.solveCmd(), a.compareCmd())
	return root
}

// setup resolves the configuration (file, .env, environment, then flags)
// and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(a.envFiles...); err != nil {
		return usageError("%v", err)
	}
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return usageError("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = strings.ToLower(a.logFormat)
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return usageError("%v", err)
	}

	l, err := logging.New(a.errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return usageError("%v", err)
	}
	a.cfg, a.log = cfg, l
	return nil
}

// loadMap reads the grid stored in a snapshot file, or generates a new city
// when path is empty. fresh reports whether the city was just generated.
func (a *app) loadMap(path string) (g *citymap.Grid, fresh bool, err error) {
	if path == "" {
		g, err = citygen.NewWithOptions(a.cfg.CityOptions()).Generate()
		if err != nil {
			return nil, false, usageError("generate city: %v", err)
		}
		a.log.Info("generated city", "width", g.Width, "height", g.Height, "seed", a.cfg.Seed)
		return g, true, nil
	}

	s, err := export.ReadFile(path)
	if err != nil {
		return nil, false, usageError("%v", err)
	}
	g, err = s.Map()
	if err != nil {
		return nil, false, usageError("%s: %v", path, err)
	}
	a.log.Info("loaded city", "file", path, "width", g.Width, "height", g.Height)
	return g, false, nil
}

// moveEndpoints applies --start and --goal, each given as "x,y".
func moveEndpoints(g *citymap.Grid, start, goal string) error {
	if start != "" {
		c, err := parseCell(start)
		if err != nil {
			return usageError("--start: %v", err)
		}
		if err := g.SetStart(c); err != nil {
			return usageError("--start: %v", err)
		}
	}
	if goal != "" {
		c, err := parseCell(goal)
		if err != nil {
			return usageError("--goal: %v", err)
		}
		if err := g.SetGoal(c); err != nil {
			return usageError("--goal: %v", err)
		}
	}
	return nil
}

// parseCell parses "x,y" (column, row).
func parseCell(s string) (citymap.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return citymap.Cell{}, fmt.Errorf("%q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return citymap.Cell{}, fmt.Errorf("%q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return citymap.Cell{}, fmt.Errorf("%q: %w", s, err)
	}
	return citymap.Cell{X: x, Y: y}, nil
}
