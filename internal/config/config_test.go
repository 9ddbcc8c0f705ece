package config

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts := cfg.Options()
	if opts.Width != 800 || opts.Height != 600 || opts.Players != 2 || opts.Caves != 5 || opts.SmoothPasses != 10 {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if opts.Seed != 0 || opts.Verbose {
		t.Fatalf("seed=%d verbose=%v, want 0 and false", opts.Seed, opts.Verbose)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level=%q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CRATER_WIDTH", "1024")
	t.Setenv("CRATER_PLAYERS", "4")
	t.Setenv("CRATER_SEED", "99")
	t.Setenv("CRATER_VERBOSE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 1024 || cfg.Players != 4 || cfg.Seed != 99 || !cfg.Verbose {
		t.Fatalf("env values not applied: %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("CRATER_HEIGHT", "tall")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CRATER_CAVES", "2")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-players", "3"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Players != 3 {
		t.Fatalf("players=%d, want 3 from the flag", cfg.Players)
	}
	if cfg.Caves != 2 {
		t.Fatalf("caves=%d, want 2 from the environment", cfg.Caves)
	}
}

func TestLevel(t *testing.T) {
	cfg := Config{LogLevel: "debug"}
	if lvl, err := cfg.Level(); err != nil || lvl != log.DebugLevel {
		t.Fatalf("level=%v err=%v", lvl, err)
	}
	cfg.LogLevel = "loud"
	if _, err := cfg.Level(); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewLoggerFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: "loud"}.NewLogger(&buf, "test")
	if logger.GetLevel() != log.InfoLevel {
		t.Fatalf("level=%v, want info", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "using default log level") {
		t.Fatalf("fallback should be reported, got %q", buf.String())
	}
}
