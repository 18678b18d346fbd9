package citygen

import "errors"

// ErrTooSmall indicates a requested size below MinSize in either dimension.
var ErrTooSmall = errors.New("citygen: width and height must be at least 5")

// ErrBadOption indicates a negative count or intensity, or a non-positive
// artery spacing.
var ErrBadOption = errors.New("citygen: invalid generator option")

// MinSize is the smallest width or height that leaves an interior inside the
// perimeter ring.
const MinSize = 5

// Options configures the generator.
type Options struct {
	Width, Height    int     // requested size; even values are bumped to odd
	ArterySpacing    int     // distance between artery rows/columns
	Alleys           int     // random alleys carved into the blocks
	TrafficLines     int     // traffic jam segments to lay
	TrafficIntensity float64 // intensity written on every jammed cell
	SafeRadius       int     // jam-free Manhattan radius around start and goal
	MaxAttempts      int     // draws allowed when placing jams
	Seed             int64   // RNG seed (0 ⇒ default seed)
}

// Option represents a functional option for configuring the generator.
type Option func(*Options)

// DefaultOptions returns a 41×41 city with arteries every 4th line,
// 20 alleys and 15 jams of intensity 5.0 kept 4 cells away from the ends.
func DefaultOptions() Options {
	return Options{
		Width:            41,
		Height:           41,
		ArterySpacing:    4,
		Alleys:           20,
		TrafficLines:     15,
		TrafficIntensity: 5.0,
		SafeRadius:       4,
		MaxAttempts:      200,
	}
}

// WithSize sets the requested width and height.
func WithSize(width, height int) Option {
	return func(o *Options) { o.Width, o.Height = width, height }
}

// WithAlleys sets the number of random alleys.
func WithAlleys(n int) Option {
	return func(o *Options) { o.Alleys = n }
}

// WithTrafficLines sets the number of jam segments.
func WithTrafficLines(n int) Option {
	return func(o *Options) { o.TrafficLines = n }
}

// WithTrafficIntensity sets the intensity of jammed cells.
func WithTrafficIntensity(v float64) Option {
	return func(o *Options) { o.TrafficIntensity = v }
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

func (o Options) validate() error {
	if o.Width < MinSize || o.Height < MinSize {
		return ErrTooSmall
	}
	if o.ArterySpacing < 1 || o.Alleys < 0 || o.TrafficLines < 0 ||
		o.TrafficIntensity < 0 || o.SafeRadius < 0 || o.MaxAttempts < 0 {
		return ErrBadOption
	}
	return nil
}
