package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions by default, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.SearchTimeout != 1500*time.Millisecond {
		t.Fatalf("expected default search timeout, got %s", cfg.App.SearchTimeout)
	}
	if cfg.App.PollInterval != 500*time.Millisecond {
		t.Fatalf("expected default poll interval, got %s", cfg.App.PollInterval)
	}
	if cfg.App.PollTimeout != 6*time.Second {
		t.Fatalf("expected default poll timeout, got %s", cfg.App.PollTimeout)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace off by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"STORMREADER_WIDTH=100",
		"STORMREADER_TRACE=true",
		"STORMREADER_SEARCH_TIMEOUT=2s",
	}
	args := []string{"--width", "80", "--verbose"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag to beat env, got %d", cfg.App.Width)
	}
	if !cfg.App.Verbose {
		t.Fatalf("expected verbose set")
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace picked up from env")
	}
	if cfg.App.SearchTimeout != 2*time.Second {
		t.Fatalf("expected env search timeout, got %s", cfg.App.SearchTimeout)
	}
}

func TestLoadArgsKeymapAndLogFile(t *testing.T) {
	cfg, err := LoadArgs([]string{"--keymap", "keys.toml", "--log-file", "out.log"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.KeymapPath != "keys.toml" {
		t.Fatalf("expected keymap path, got %q", cfg.App.KeymapPath)
	}
	if cfg.Logging.FilePath != "out.log" {
		t.Fatalf("expected log file path, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	env := []string{"STORMREADER_WIDTH=not-a-number", "JUNK", ""}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected malformed env ignored, got %d", cfg.App.Width)
	}
}

func TestLoadArgsRecordsFlagsForTracing(t *testing.T) {
	cfg, err := LoadArgs([]string{"--trace"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Flags["trace"] != "true" {
		t.Fatalf("expected trace flag recorded, got %q", cfg.Flags["trace"])
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "--trace" {
		t.Fatalf("expected argv preserved, got %v", cfg.Args)
	}
}
