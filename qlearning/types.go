package qlearning

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/swarmroute/citymap"
)

// Sentinel errors returned by the learner.
var (
	// ErrNilGrid indicates a nil *citymap.Grid.
	ErrNilGrid = errors.New("qlearning: grid is nil")

	// ErrBadEpisodes indicates a negative episode budget.
	ErrBadEpisodes = errors.New("qlearning: Episodes must be non-negative")

	// ErrBadLearningRate indicates a learning rate outside (0,1].
	ErrBadLearningRate = errors.New("qlearning: LearningRate must be in (0,1]")

	// ErrBadDiscount indicates a discount factor outside [0,1].
	ErrBadDiscount = errors.New("qlearning: Discount must be in [0,1]")

	// ErrBadEpsilon indicates an inconsistent exploration schedule: every value
	// must lie in [0,1], EpsilonDecay must be positive and Epsilon ≥ EpsilonFloor.
	ErrBadEpsilon = errors.New("qlearning: invalid epsilon schedule")

	// ErrBadSteps indicates a non-positive MaxSteps or MaxPathLen.
	ErrBadSteps = errors.New("qlearning: MaxSteps and MaxPathLen must be positive")
)

// Action is a move on the grid.
type Action int

// Actions in their fixed enumeration order.
const (
	Up Action = iota
	Down
	Left
	Right
)

// NumActions is the size of the action space.
const NumActions = 4

// Actions lists every action in enumeration order.
var Actions = [NumActions]Action{Up, Down, Left, Right}

var actionDelta = [NumActions][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Delta returns the (dx, dy) displacement of a.
func (a Action) Delta() (dx, dy int) {
	return actionDelta[a][0], actionDelta[a][1]
}

// Apply returns the cell reached from c by a, without any bounds check.
func (a Action) Apply(c citymap.Cell) citymap.Cell {
	return c.Add(a.Delta())
}

func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// RewardShaper adds a bonus (or penalty) to the reward of a move from → to.
type RewardShaper interface {
	Shape(from, to citymap.Cell) float64
}

// RewardShaperFunc adapts a plain function to RewardShaper.
type RewardShaperFunc func(from, to citymap.Cell) float64

// Shape calls f(from, to).
func (f RewardShaperFunc) Shape(from, to citymap.Cell) float64 { return f(from, to) }

// DefaultConductivityWeight scales a conductivity field into reward units.
const DefaultConductivityWeight = 2.0

// FieldShaper rewards entering a cell by Weight × Field(to). With a
// normalized slime mold conductivity field it biases the agent toward the
// swarm's preferred streets.
type FieldShaper struct {
	Field  *citymap.Field
	Weight float64
}

// Shape returns Weight × Field(to).
func (s FieldShaper) Shape(_, to citymap.Cell) float64 {
	return s.Weight * s.Field.At(to)
}

// Check reports citymap.ErrDimensionMismatch when the field does not cover g.
func (s FieldShaper) Check(g *citymap.Grid) error {
	if s.Field == nil || !s.Field.Fits(g) {
		return fmt.Errorf("qlearning: shaping field: %w", citymap.ErrDimensionMismatch)
	}
	return nil
}

// RewardConfig holds every term of the reward function explicitly.
//
// Goal          – reward for entering the goal; replaces all other terms.
// Step          – base reward of any other valid move.
// TrafficWeight – penalty per unit of traffic at the destination (0 disables).
// CompassBonus  – added when the move reduces Manhattan distance to the
// goal, subtracted otherwise (0 disables).
// InvalidMove   – target value for actions that hit a building or the edge.
// Shaper        – optional extra term; nil means none.
type RewardConfig struct {
	Goal          float64
	Step          float64
	TrafficWeight float64
	CompassBonus  float64
	InvalidMove   float64
	Shaper        RewardShaper
}

// DefaultRewardConfig returns Goal 1000, Step −1, TrafficWeight 2,
// CompassBonus 0.5, InvalidMove −50 and no shaper.
func DefaultRewardConfig() RewardConfig {
	return RewardConfig{
		Goal:          1000,
		Step:          -1,
		TrafficWeight: 2,
		CompassBonus:  0.5,
		InvalidMove:   -50,
	}
}

// EpisodeStats summarizes one training episode; see Options.OnEpisode.
type EpisodeStats struct {
	Episode     int     // zero-based, counted over the Learner's lifetime
	Steps       int     // steps taken, invalid moves included
	Epsilon     float64 // exploration rate used during the episode
	ReachedGoal bool    // whether the episode ended on the goal
	Return      float64 // undiscounted sum of rewards received
}

// Options configures the learner.
//
// Episodes      – training episodes run by Solve.
// LearningRate  – α in (0,1].
// Discount      – γ in [0,1].
// Epsilon       – initial exploration rate.
// EpsilonDecay  – multiplicative decay applied after every episode.
// EpsilonFloor  – lower bound of ε.
// MaxSteps      – step cap per episode.
// MaxPathLen    – cell cap of the greedy rollout.
// Reward        – reward function terms.
// Seed          – RNG seed (0 ⇒ default seed).
// Logger        – optional debug logger.
// OnEpisode     – optional hook called after every episode.
type Options struct {
	Episodes     int
	LearningRate float64
	Discount     float64
	Epsilon      float64
	EpsilonDecay float64
	EpsilonFloor float64
	MaxSteps     int
	MaxPathLen   int
	Reward       RewardConfig
	Seed         int64
	Logger       *slog.Logger
	OnEpisode    func(EpisodeStats)
}

// Option represents a functional option for configuring the learner.
type Option func(*Options)

// DefaultOptions returns the tuned defaults:
//
//   - Episodes: 5000, LearningRate: 0.1, Discount: 0.95
//   - Epsilon: 1.0, EpsilonDecay: 0.9992, EpsilonFloor: 0.05
//   - MaxSteps: 1500, MaxPathLen: 1500
//   - Reward: DefaultRewardConfig()
func DefaultOptions() Options {
	return Options{
		Episodes:     5000,
		LearningRate: 0.1,
		Discount:     0.95,
		Epsilon:      1.0,
		EpsilonDecay: 0.9992,
		EpsilonFloor: 0.05,
		MaxSteps:     1500,
		MaxPathLen:   1500,
		Reward:       DefaultRewardConfig(),
	}
}

// WithEpisodes sets the training budget.
func WithEpisodes(n int) Option {
	return func(o *Options) { o.Episodes = n }
}

// WithLearningRate sets α.
func WithLearningRate(a float64) Option {
	return func(o *Options) { o.LearningRate = a }
}

// WithDiscount sets γ.
func WithDiscount(g float64) Option {
	return func(o *Options) { o.Discount = g }
}

// WithEpsilonSchedule sets the initial ε, its decay and its floor.
func WithEpsilonSchedule(start, decay, floor float64) Option {
	return func(o *Options) { o.Epsilon, o.EpsilonDecay, o.EpsilonFloor = start, decay, floor }
}

// WithReward replaces the reward configuration.
func WithReward(rc RewardConfig) Option {
	return func(o *Options) { o.Reward = rc }
}

// WithShaper installs an extra reward term.
func WithShaper(s RewardShaper) Option {
	return func(o *Options) { o.Reward.Shaper = s }
}

// WithConductivity shapes rewards by DefaultConductivityWeight × f(to).
func WithConductivity(f *citymap.Field) Option {
	return WithShaper(FieldShaper{Field: f, Weight: DefaultConductivityWeight})
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger installs a debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnEpisode installs a per-episode hook.
func WithOnEpisode(fn func(EpisodeStats)) Option {
	return func(o *Options) { o.OnEpisode = fn }
}

func (o Options) validate() error {
	switch {
	case o.Episodes < 0:
		return ErrBadEpisodes
	case !(o.LearningRate > 0 && o.LearningRate <= 1):
		return ErrBadLearningRate
	case !(o.Discount >= 0 && o.Discount <= 1):
		return ErrBadDiscount
	case !(o.EpsilonDecay > 0 && o.EpsilonDecay <= 1),
		!(o.EpsilonFloor >= 0 && o.EpsilonFloor <= 1),
		!(o.Epsilon >= o.EpsilonFloor && o.Epsilon <= 1):
		return ErrBadEpsilon
	case o.MaxSteps < 1 || o.MaxPathLen < 1:
		return ErrBadSteps
	}
	return nil
}
