package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SWARMROUTE_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads the given .env files (".env" when none are named) into
// the process environment without overriding variables already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: %s: %w", f, err)
		}
	}
	return nil
}

// override binds one environment variable to a Config field.
type override struct {
	key string
	set func(c *Config, v string) error
}

func str(field func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error { *field(c) = v; return nil }
}

func integer(field func(c *Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func float(field func(c *Config) *float64) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

var overrides = []override{
	{"SEED", func(c *Config, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = n
		return nil
	}},
	{"OUTPUT", str(func(c *Config) *string { return &c.Output })},
	{"LOG_LEVEL", str(func(c *Config) *string { return &c.Log.Level })},
	{"LOG_FORMAT", str(func(c *Config) *string { return &c.Log.Format })},
	{"CITY_WIDTH", integer(func(c *Config) *int { return &c.City.Width })},
	{"CITY_HEIGHT", integer(func(c *Config) *int { return &c.City.Height })},
	{"SLIME_AGENTS", integer(func(c *Config) *int { return &c.Slime.Agents })},
	{"SLIME_ITERATIONS", integer(func(c *Config) *int { return &c.Slime.Iterations })},
	{"ANT_WORKERS", integer(func(c *Config) *int { return &c.Ants.Workers })},
	{"ANT_RETENTION", float(func(c *Config) *float64 { return &c.Ants.Retention })},
	{"EPISODES", integer(func(c *Config) *int { return &c.Learner.Episodes })},
	{"FRESH_EPISODES", integer(func(c *Config) *int { return &c.Hybrid.FreshEpisodes })},
	{"FAST_EPISODES", integer(func(c *Config) *int { return &c.Hybrid.FastEpisodes })},
	{"FINISHER", str(func(c *Config) *string { return &c.Hybrid.Finisher })},
}

// ApplyEnv overlays every SWARMROUTE_* variable reported by lookup.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	for _, o := range overrides {
		v, ok := lookup(EnvPrefix + o.key)
		if !ok {
			continue
		}
		if err := o.set(c, v); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalid, EnvPrefix, o.key, v, err)
		}
	}
	return nil
}
