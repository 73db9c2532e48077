package main

import (
	"testing"
	"time"

	"stormreader/internal/app"
	"stormreader/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:         80,
			Height:        24,
			Verbose:       true,
			KeymapPath:    "keys.toml",
			SearchTimeout: 1500 * time.Millisecond,
			PollInterval:  500 * time.Millisecond,
			PollTimeout:   6 * time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"width":   "80",
			"height":  "24",
			"verbose": "true",
			"keymap":  "keys.toml",
		},
		Args: []string{"--width", "80"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["keymap"] != "keys.toml" {
		t.Fatalf("expected keymap flag, got %v", flagsValue["keymap"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	timing, ok := payload["timing"].(map[string]string)
	if !ok {
		t.Fatalf("expected timing map in payload")
	}
	if timing["searchTimeout"] != "1.5s" {
		t.Fatalf("expected search timeout recorded, got %q", timing["searchTimeout"])
	}
	if timing["pollInterval"] != "500ms" || timing["pollTimeout"] != "6s" {
		t.Fatalf("expected poll durations recorded, got %q/%q", timing["pollInterval"], timing["pollTimeout"])
	}
	if payload["fixedViewport"] != true {
		t.Fatalf("expected fixed viewport flag, got %v", payload["fixedViewport"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
