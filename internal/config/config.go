// Package config loads process settings for the Crater Duel frontends.
//
// Values come from CRATER_* environment variables first; each cmd then binds
// the same fields to command-line flags, so an explicit flag wins.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/Garsondee/Crater-Duel/internal/game"
)

// Config holds everything a frontend needs to start a match.
type Config struct {
	Width        int    `env:"CRATER_WIDTH" envDefault:"800"`
	Height       int    `env:"CRATER_HEIGHT" envDefault:"600"`
	Players      int    `env:"CRATER_PLAYERS" envDefault:"2"`
	Seed         int64  `env:"CRATER_SEED" envDefault:"0"`
	Caves        int    `env:"CRATER_CAVES" envDefault:"5"`
	SmoothPasses int    `env:"CRATER_SMOOTH_PASSES" envDefault:"10"`
	Verbose      bool   `env:"CRATER_VERBOSE" envDefault:"false"`
	LogLevel     string `env:"CRATER_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the environment configuration with defaults applied.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RegisterFlags binds the match settings to fs. The current values, usually
// from Load, become the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "field width in px")
	fs.IntVar(&c.Height, "height", c.Height, "field height in px")
	fs.IntVar(&c.Players, "players", c.Players, "number of combatants (2-4)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain seed (0 = time-based)")
	fs.IntVar(&c.Caves, "caves", c.Caves, "caves carved per round")
	fs.IntVar(&c.SmoothPasses, "smooth", c.SmoothPasses, "terrain smoothing passes")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "record per-tick flight and rejected actions")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn, error")
}

// Options converts the settings into match options.
func (c Config) Options() game.Options {
	return game.Options{
		Width:        c.Width,
		Height:       c.Height,
		Players:      c.Players,
		Seed:         c.Seed,
		Caves:        c.Caves,
		SmoothPasses: c.SmoothPasses,
		Verbose:      c.Verbose,
	}
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// NewLogger builds the process logger. An unknown level falls back to info
// and is reported through the returned logger.
func (c Config) NewLogger(w io.Writer, prefix string) *log.Logger {
	lvl, err := c.Level()
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
		Level:           lvl,
	})
	if err != nil {
		logger.Warn("using default log level", "err", err)
	}
	return logger
}
