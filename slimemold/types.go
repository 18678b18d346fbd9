package slimemold

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by the optimizer.
var (
	// ErrNilGrid indicates a nil *citymap.Grid.
	ErrNilGrid = errors.New("slimemold: grid is nil")

	// ErrBadAgents indicates a population smaller than one agent.
	ErrBadAgents = errors.New("slimemold: Agents must be at least 1")

	// ErrBadIterations indicates a negative iteration budget.
	ErrBadIterations = errors.New("slimemold: Iterations must be non-negative")

	// ErrBadWeight indicates an InitialWeight outside [0,1].
	ErrBadWeight = errors.New("slimemold: InitialWeight must be in [0,1]")

	// ErrNegativeParam indicates a negative ExploreStep, Deposit, TrafficWeight
	// or MaxPlacementRetries.
	ErrNegativeParam = errors.New("slimemold: step, deposit, traffic weight and retries must be non-negative")

	// ErrPlacementFailed indicates that an agent found no free cell within
	// MaxPlacementRetries draws (degenerate, almost fully blocked grid).
	ErrPlacementFailed = errors.New("slimemold: could not place agent on a free cell")
)

// IterationStats summarizes one completed iteration; see Options.OnIteration.
type IterationStats struct {
	Iteration int     // zero-based iteration index
	Weight    float64 // exploitation probability w used in this iteration
	BestCost  float64 // cost of the reference (lowest-cost) agent
	Moves     int     // committed moves (and therefore deposits)
}

// Options configures the optimizer.
//
// Agents              – population size (≥ 1).
// Iterations          – fixed iteration budget; the only stopping criterion.
// InitialWeight       – exploration-decay base: w before the first decay, in [0,1].
// ExploreStep         – scale of the random step toward a peer agent.
// Deposit             – conductivity added to a cell on every committed move.
// TrafficWeight       – multiplier of the traffic term of the cost function.
// MaxPlacementRetries – draws allowed per agent to find a free start cell.
// Seed                – RNG seed (0 ⇒ default seed).
// Logger              – optional debug logger (nil ⇒ silent).
// OnIteration         – optional hook called after every iteration.
type Options struct {
	Agents              int
	Iterations          int
	InitialWeight       float64
	ExploreStep         float64
	Deposit             float64
	TrafficWeight       float64
	MaxPlacementRetries int
	Seed                int64
	Logger              *slog.Logger
	OnIteration         func(IterationStats)
}

// Option represents a functional option for configuring the optimizer.
type Option func(*Options)

// DefaultOptions returns the tuned defaults:
//
//   - Agents: 50, Iterations: 100
//   - InitialWeight: 0.9, ExploreStep: 0.05
//   - Deposit: 0.1, TrafficWeight: 10
//   - MaxPlacementRetries: 10000, Seed: 0
func DefaultOptions() Options {
	return Options{
		Agents:              50,
		Iterations:          100,
		InitialWeight:       0.9,
		ExploreStep:         0.05,
		Deposit:             0.1,
		TrafficWeight:       10,
		MaxPlacementRetries: 10000,
	}
}

// WithAgents sets the population size.
func WithAgents(n int) Option {
	return func(o *Options) { o.Agents = n }
}

// WithIterations sets the iteration budget.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithInitialWeight sets the exploration-decay base.
func WithInitialWeight(w float64) Option {
	return func(o *Options) { o.InitialWeight = w }
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger installs a debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnIteration installs a per-iteration hook.
func WithOnIteration(fn func(IterationStats)) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// validate checks o in declaration order and returns the first violation.
func (o Options) validate() error {
	switch {
	case o.Agents < 1:
		return ErrBadAgents
	case o.Iterations < 0:
		return ErrBadIterations
	case o.InitialWeight < 0 || o.InitialWeight > 1:
		return ErrBadWeight
	case o.ExploreStep < 0, o.Deposit < 0, o.TrafficWeight < 0, o.MaxPlacementRetries < 0:
		return ErrNegativeParam
	}
	return nil
}
