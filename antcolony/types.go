package antcolony

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/swarmroute/citymap"
)

// Sentinel errors returned by the colony.
var (
	// ErrNilGrid indicates a nil *citymap.Grid.
	ErrNilGrid = errors.New("antcolony: grid is nil")

	// ErrBadAnts indicates a population smaller than one ant.
	ErrBadAnts = errors.New("antcolony: Ants must be at least 1")

	// ErrBadIterations indicates a negative iteration budget.
	ErrBadIterations = errors.New("antcolony: Iterations must be non-negative")

	// ErrNegativeExponent indicates a negative Alpha or Beta.
	ErrNegativeExponent = errors.New("antcolony: Alpha and Beta must be non-negative")

	// ErrBadRetention indicates a Retention outside [0,1].
	ErrBadRetention = errors.New("antcolony: Retention must be in [0,1]")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("antcolony: Workers must be non-negative")
)

// IterationStats summarizes one completed iteration; see Options.OnIteration.
type IterationStats struct {
	Iteration     int     // zero-based iteration index
	Successes     int     // ants that reached the goal in this iteration
	BestLength    int     // length of the best path so far, 0 if none yet
	PheromoneMass float64 // total pheromone after the update
}

// Options configures the colony.
//
// Ants             – ants per iteration (≥ 1).
// Iterations       – fixed iteration budget.
// Alpha            – pheromone importance exponent (≥ 0).
// Beta             – heuristic importance exponent (≥ 0).
// Retention        – fraction of pheromone kept by each evaporation, in [0,1].
// InitialPheromone – optional seed field (e.g. slime mold conductivity), copied
// and zeroed on buildings; nil ⇒ 1.0 on every road.
// Workers          – ants walking concurrently; 0 or 1 ⇒ sequential.
// Seed             – RNG seed (0 ⇒ default seed).
// Logger           – optional debug logger.
// OnIteration      – optional hook called after every pheromone update.
type Options struct {
	Ants             int
	Iterations       int
	Alpha            float64
	Beta             float64
	Retention        float64
	InitialPheromone *citymap.Field
	Workers          int
	Seed             int64
	Logger           *slog.Logger
	OnIteration      func(IterationStats)
}

// Option represents a functional option for configuring the colony.
type Option func(*Options)

// DefaultOptions returns the tuned defaults:
//
//   - Ants: 20, Iterations: 50
//   - Alpha: 1, Beta: 2
//   - Retention: 0.5 (half the pheromone evaporates per iteration)
//   - InitialPheromone: nil (uniform), Workers: 1, Seed: 0
func DefaultOptions() Options {
	return Options{
		Ants:       20,
		Iterations: 50,
		Alpha:      1,
		Beta:       2,
		Retention:  0.5,
		Workers:    1,
	}
}

// WithAnts sets the population size.
func WithAnts(n int) Option {
	return func(o *Options) { o.Ants = n }
}

// WithIterations sets the iteration budget.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithExponents sets Alpha (pheromone) and Beta (heuristic).
func WithExponents(alpha, beta float64) Option {
	return func(o *Options) { o.Alpha, o.Beta = alpha, beta }
}

// WithRetention sets the evaporation retention fraction.
func WithRetention(r float64) Option {
	return func(o *Options) { o.Retention = r }
}

// WithInitialPheromone seeds the pheromone field from f instead of a uniform prior.
func WithInitialPheromone(f *citymap.Field) Option {
	return func(o *Options) { o.InitialPheromone = f }
}

// WithWorkers bounds the number of ants walking concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
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

func (o Options) validate() error {
	switch {
	case o.Ants < 1:
		return ErrBadAnts
	case o.Iterations < 0:
		return ErrBadIterations
	case o.Alpha < 0 || o.Beta < 0:
		return ErrNegativeExponent
	case o.Retention < 0 || o.Retention > 1:
		return ErrBadRetention
	case o.Workers < 0:
		return ErrBadWorkers
	}
	return nil
}
