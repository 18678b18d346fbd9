// Package config loads swarmroute settings from a YAML file, an optional
// .env file and SWARMROUTE_* environment variables, in that order of
// increasing precedence, and converts them into engine options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swarmroute/antcolony"
	"github.com/katalvlaran/swarmroute/citygen"
	"github.com/katalvlaran/swarmroute/hybrid"
	"github.com/katalvlaran/swarmroute/internal/logging"
	"github.com/katalvlaran/swarmroute/qlearning"
	"github.com/katalvlaran/swarmroute/slimemold"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full tool configuration.
type Config struct {
	Seed    int64         `yaml:"seed"`
	Output  string        `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	City    CityConfig    `yaml:"city"`
	Slime   SlimeConfig   `yaml:"slime"`
	Ants    AntConfig     `yaml:"ants"`
	Learner LearnerConfig `yaml:"learner"`
	Hybrid  HybridConfig  `yaml:"hybrid"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CityConfig drives the city generator.
type CityConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Alleys       int `yaml:"alleys"`
	TrafficLines int `yaml:"traffic_lines"`
}

// SlimeConfig mirrors the tunable slime mold options.
type SlimeConfig struct {
	Agents        int     `yaml:"agents"`
	Iterations    int     `yaml:"iterations"`
	InitialWeight float64 `yaml:"initial_weight"`
}

// AntConfig mirrors the tunable ant colony options.
type AntConfig struct {
	Ants       int     `yaml:"ants"`
	Iterations int     `yaml:"iterations"`
	Alpha      float64 `yaml:"alpha"`
	Beta       float64 `yaml:"beta"`
	Retention  float64 `yaml:"retention"`
	Workers    int     `yaml:"workers"`
}

// LearnerConfig mirrors the tunable Q-learning options.
type LearnerConfig struct {
	Episodes     int     `yaml:"episodes"`
	LearningRate float64 `yaml:"learning_rate"`
	Discount     float64 `yaml:"discount"`
	Epsilon      float64 `yaml:"epsilon"`
	EpsilonDecay float64 `yaml:"epsilon_decay"`
	EpsilonFloor float64 `yaml:"epsilon_floor"`
}

// HybridConfig holds the pipeline budgets and finisher.
type HybridConfig struct {
	FreshEpisodes int     `yaml:"fresh_episodes"`
	FastEpisodes  int     `yaml:"fast_episodes"`
	Finisher      string  `yaml:"finisher"`
	ShapingWeight float64 `yaml:"shaping_weight"`
}

// Default returns the configuration matching every engine's DefaultOptions.
func Default() Config {
	city := citygen.DefaultOptions()
	slime := slimemold.DefaultOptions()
	ants := antcolony.DefaultOptions()
	learner := qlearning.DefaultOptions()
	return Config{
		Output: "traffic_data.json",
		Log:    LogConfig{Level: "info", Format: "text"},
		City: CityConfig{
			Width:        city.Width,
			Height:       city.Height,
			Alleys:       city.Alleys,
			TrafficLines: city.TrafficLines,
		},
		Slime: SlimeConfig{
			Agents:        slime.Agents,
			Iterations:    slime.Iterations,
			InitialWeight: slime.InitialWeight,
		},
		Ants: AntConfig{
			Ants:       ants.Ants,
			Iterations: ants.Iterations,
			Alpha:      ants.Alpha,
			Beta:       ants.Beta,
			Retention:  ants.Retention,
			Workers:    ants.Workers,
		},
		Learner: LearnerConfig{
			Episodes:     learner.Episodes,
			LearningRate: learner.LearningRate,
			Discount:     learner.Discount,
			Epsilon:      learner.Epsilon,
			EpsilonDecay: learner.EpsilonDecay,
			EpsilonFloor: learner.EpsilonFloor,
		},
		Hybrid: HybridConfig{
			FreshEpisodes: hybrid.FreshEpisodes,
			FastEpisodes:  hybrid.FastEpisodes,
			Finisher:      hybrid.FinishQLearning.String(),
			ShapingWeight: qlearning.DefaultConductivityWeight,
		},
	}
}

// Load builds a configuration from Default, the YAML file at path (skipped
// when path is empty), then environment overrides, and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := cfg.Decode(bytes.NewReader(data)); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto c. Unknown keys are rejected; an empty
// document leaves c unchanged.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Encode writes c as YAML to w.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the settings the engines do not check themselves.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q: %w", ErrInvalid, c.Log.Format, logging.ErrBadFormat)
	}
	if c.City.Width < citygen.MinSize || c.City.Height < citygen.MinSize {
		return fmt.Errorf("%w: city %dx%d: %w", ErrInvalid, c.City.Width, c.City.Height, citygen.ErrTooSmall)
	}
	if c.Learner.Episodes < 0 || c.Hybrid.FreshEpisodes < 0 || c.Hybrid.FastEpisodes < 0 {
		return fmt.Errorf("%w: episode budgets must be non-negative", ErrInvalid)
	}
	if _, err := hybrid.ParseFinisher(c.Hybrid.Finisher); err != nil {
		return fmt.Errorf("%w: hybrid.finisher: %w", ErrInvalid, err)
	}
	return nil
}

// CityOptions returns the generator options.
func (c Config) CityOptions() citygen.Options {
	o := citygen.DefaultOptions()
	o.Width, o.Height = c.City.Width, c.City.Height
	o.Alleys, o.TrafficLines = c.City.Alleys, c.City.TrafficLines
	o.Seed = c.Seed
	return o
}

// SlimeOptions returns the slime mold options.
func (c Config) SlimeOptions(l *slog.Logger) slimemold.Options {
	o := slimemold.DefaultOptions()
	o.Agents, o.Iterations, o.InitialWeight = c.Slime.Agents, c.Slime.Iterations, c.Slime.InitialWeight
	o.Seed, o.Logger = c.Seed, l
	return o
}

// AntOptions returns the ant colony options.
func (c Config) AntOptions(l *slog.Logger) antcolony.Options {
	o := antcolony.DefaultOptions()
	o.Ants, o.Iterations = c.Ants.Ants, c.Ants.Iterations
	o.Alpha, o.Beta, o.Retention = c.Ants.Alpha, c.Ants.Beta, c.Ants.Retention
	o.Workers = c.Ants.Workers
	o.Seed, o.Logger = c.Seed, l
	return o
}

// LearnerOptions returns the Q-learning options.
func (c Config) LearnerOptions(l *slog.Logger) qlearning.Options {
	o := qlearning.DefaultOptions()
	o.Episodes = c.Learner.Episodes
	o.LearningRate, o.Discount = c.Learner.LearningRate, c.Learner.Discount
	o.Epsilon, o.EpsilonDecay, o.EpsilonFloor = c.Learner.Epsilon, c.Learner.EpsilonDecay, c.Learner.EpsilonFloor
	o.Seed, o.Logger = c.Seed, l
	return o
}

// PipelineOptions returns the hybrid options with the fresh or fast budget.
func (c Config) PipelineOptions(l *slog.Logger, fresh bool) (hybrid.Options, error) {
	f, err := hybrid.ParseFinisher(c.Hybrid.Finisher)
	if err != nil {
		return hybrid.Options{}, err
	}
	o := hybrid.Options{
		Slime:         c.SlimeOptions(l),
		Learner:       c.LearnerOptions(l),
		Ants:          c.AntOptions(l),
		Finisher:      f,
		ShapingWeight: c.Hybrid.ShapingWeight,
		Logger:        l,
	}
	o.Learner.Episodes = c.Hybrid.FastEpisodes
	if fresh {
		o.Learner.Episodes = c.Hybrid.FreshEpisodes
	}
	return o, nil
}
