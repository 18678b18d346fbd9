package hybrid

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/swarmroute/antcolony"
	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/qlearning"
	"github.com/katalvlaran/swarmroute/slimemold"
)

var (
	// ErrNilGrid indicates a nil *citymap.Grid.
	ErrNilGrid = errors.New("hybrid: grid is nil")

	// ErrBadFinisher indicates an unknown Finisher value.
	ErrBadFinisher = errors.New("hybrid: unknown finisher")

	// ErrBadShapingWeight indicates a negative ShapingWeight.
	ErrBadShapingWeight = errors.New("hybrid: ShapingWeight must be non-negative")
)

// Q-learning budgets of the pipeline.
const (
	// DefaultEpisodes is the budget of a standalone hybrid solve.
	DefaultEpisodes = 15000
	// FreshEpisodes is the budget for a newly generated map.
	FreshEpisodes = 10000
	// FastEpisodes is the budget for re-solving an unchanged map.
	FastEpisodes = 2500
)

// Episodes returns FreshEpisodes for a new map and FastEpisodes otherwise.
func Episodes(fresh bool) int {
	if fresh {
		return FreshEpisodes
	}
	return FastEpisodes
}

// Finisher selects the phase-2 engine.
type Finisher int

const (
	// FinishQLearning shapes Q-learning rewards with the conductivity field.
	FinishQLearning Finisher = iota
	// FinishAntColony seeds the ant colony pheromones with the conductivity field.
	FinishAntColony
)

func (f Finisher) String() string {
	switch f {
	case FinishQLearning:
		return "qlearning"
	case FinishAntColony:
		return "antcolony"
	}
	return fmt.Sprintf("Finisher(%d)", int(f))
}

// ParseFinisher maps "qlearning" or "antcolony" to a Finisher.
func ParseFinisher(s string) (Finisher, error) {
	switch s {
	case "qlearning", "":
		return FinishQLearning, nil
	case "antcolony":
		return FinishAntColony, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrBadFinisher)
}

// Result carries both phase outputs. Conductivity is set whenever phase 1
// succeeded, even if phase 2 found no path.
type Result struct {
	Conductivity *citymap.Field
	Path         citymap.Path
	Finisher     Finisher
}

// Options configures the pipeline.
type Options struct {
	Slime         slimemold.Options
	Learner       qlearning.Options
	Ants          antcolony.Options
	Finisher      Finisher
	ShapingWeight float64 // conductivity reward weight for FinishQLearning
	Logger        *slog.Logger
}

// Option represents a functional option for configuring the pipeline.
type Option func(*Options)

// DefaultOptions returns the engine defaults with DefaultEpisodes of
// Q-learning, the Q-learning finisher and ShapingWeight 2.
func DefaultOptions() Options {
	o := Options{
		Slime:         slimemold.DefaultOptions(),
		Learner:       qlearning.DefaultOptions(),
		Ants:          antcolony.DefaultOptions(),
		Finisher:      FinishQLearning,
		ShapingWeight: qlearning.DefaultConductivityWeight,
	}
	o.Learner.Episodes = DefaultEpisodes
	return o
}

// WithEpisodes sets the Q-learning budget.
func WithEpisodes(n int) Option {
	return func(o *Options) { o.Learner.Episodes = n }
}

// WithFinisher selects the phase-2 engine.
func WithFinisher(f Finisher) Option {
	return func(o *Options) { o.Finisher = f }
}

// WithSeed seeds every engine with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Slime.Seed = seed
		o.Learner.Seed = seed
		o.Ants.Seed = seed
	}
}

// WithLogger installs logger on the pipeline and on every engine.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
		o.Slime.Logger = l
		o.Learner.Logger = l
		o.Ants.Logger = l
	}
}

// WithSlime applies slime mold options on top of the current ones.
func WithSlime(opts ...slimemold.Option) Option {
	return func(o *Options) {
		for _, opt := range opts {
			opt(&o.Slime)
		}
	}
}

// WithLearner applies Q-learning options on top of the current ones.
func WithLearner(opts ...qlearning.Option) Option {
	return func(o *Options) {
		for _, opt := range opts {
			opt(&o.Learner)
		}
	}
}

// WithAnts applies ant colony options on top of the current ones.
func WithAnts(opts ...antcolony.Option) Option {
	return func(o *Options) {
		for _, opt := range opts {
			opt(&o.Ants)
		}
	}
}
