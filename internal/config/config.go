package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Options holds the runtime settings. Defaults come from the struct tags,
// env vars override them, and command-line flags override both.
type Options struct {
	Seed         int64         `env:"TETRIS_SEED" envDefault:"0"`
	BaseInterval time.Duration `env:"TETRIS_BASE_INTERVAL" envDefault:"800ms"`
	Accel        float64       `env:"TETRIS_ACCEL" envDefault:"1.2"`
	Debug        bool          `env:"TETRIS_DEBUG" envDefault:"false"`
	LogPath      string        `env:"TETRIS_LOG_PATH" envDefault:"debug.log"`
}

// Load reads Options from the environment.
func Load() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return opts, fmt.Errorf("parse env: %w", err)
	}
	return opts, nil
}

// RegisterFlags binds the options to fs, using the current values as
// defaults.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&o.Seed, "seed", o.Seed, "Random seed for piece selection (0 uses the clock)")
	fs.Int64Var(&o.Seed, "s", o.Seed, "Random seed (shorthand)")

	fs.DurationVar(&o.BaseInterval, "interval", o.BaseInterval, "Drop interval at stage 1")
	fs.DurationVar(&o.BaseInterval, "i", o.BaseInterval, "Drop interval at stage 1 (shorthand)")

	fs.Float64Var(&o.Accel, "accel", o.Accel, "Speed-up factor applied per stage")
	fs.Float64Var(&o.Accel, "a", o.Accel, "Speed-up factor per stage (shorthand)")

	fs.BoolVar(&o.Debug, "debug", o.Debug, "Write a debug log")
	fs.BoolVar(&o.Debug, "d", o.Debug, "Write a debug log (shorthand)")

	fs.StringVar(&o.LogPath, "log", o.LogPath, "Debug log path")
}

// Validate rejects settings the drop timer cannot use.
func (o Options) Validate() error {
	var errs []error
	if o.BaseInterval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", o.BaseInterval))
	}
	if o.Accel < 1 {
		errs = append(errs, fmt.Errorf("accel must be at least 1, got %g", o.Accel))
	}
	if o.Debug && o.LogPath == "" {
		errs = append(errs, errors.New("debug logging needs a log path"))
	}
	return errors.Join(errs...)
}
