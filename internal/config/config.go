package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"stormreader/internal/app"
)

// Config captures runtime configuration for the harness.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth         = "STORMREADER_WIDTH"
	envHeight        = "STORMREADER_HEIGHT"
	envVerbose       = "STORMREADER_VERBOSE"
	envTrace         = "STORMREADER_TRACE"
	envLogFile       = "STORMREADER_LOG_FILE"
	envKeymap        = "STORMREADER_KEYMAP"
	envSearchTimeout = "STORMREADER_SEARCH_TIMEOUT"
	envPollInterval  = "STORMREADER_POLL_INTERVAL"
	envPollTimeout   = "STORMREADER_POLL_TIMEOUT"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("stormreader", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "echo consumed events in the transcript")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	keymap := fs.String("keymap", envOrDefault(env, envKeymap, ""), "path to a TOML key bindings file")
	searchTimeout := fs.Duration("search-timeout", envOrDuration(env, envSearchTimeout, 1500*time.Millisecond), "type-ahead idle window")
	pollInterval := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, 500*time.Millisecond), "reward poll sampling interval")
	pollTimeout := fs.Duration("poll-timeout", envOrDuration(env, envPollTimeout, 6*time.Second), "reward poll wall-clock timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *searchTimeout < 0 {
		return Config{}, fmt.Errorf("search-timeout must be >= 0 (got %s)", *searchTimeout)
	}

	cfg := Config{
		App: app.Config{
			Width:         *width,
			Height:        *height,
			Verbose:       *verbose,
			KeymapPath:    *keymap,
			SearchTimeout: *searchTimeout,
			PollInterval:  *pollInterval,
			PollTimeout:   *pollTimeout,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"verbose":       strconv.FormatBool(*verbose),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
			"keymap":        *keymap,
			"searchTimeout": searchTimeout.String(),
			"pollInterval":  pollInterval.String(),
			"pollTimeout":   pollTimeout.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
