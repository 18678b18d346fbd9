package baseline

import "errors"

var (
	// ErrNilGrid indicates a nil *citymap.Grid.
	ErrNilGrid = errors.New("baseline: grid is nil")

	// ErrNegativeCost indicates a negative StepCost or TrafficWeight.
	ErrNegativeCost = errors.New("baseline: costs must be non-negative")
)

// Options configures the Dijkstra router.
type Options struct {
	StepCost      float64 // cost of entering any cell
	TrafficWeight float64 // extra cost per unit of traffic of the entered cell
}

// Option represents a functional option for configuring the Dijkstra router.
type Option func(*Options)

// DefaultOptions prices a step at 1 and each unit of traffic at 2, the same
// ratio the Q-learning reward uses.
func DefaultOptions() Options {
	return Options{StepCost: 1, TrafficWeight: 2}
}

// WithStepCost sets the per-cell cost.
func WithStepCost(c float64) Option {
	return func(o *Options) { o.StepCost = c }
}

// WithTrafficWeight sets the per-traffic-unit cost.
func WithTrafficWeight(w float64) Option {
	return func(o *Options) { o.TrafficWeight = w }
}
