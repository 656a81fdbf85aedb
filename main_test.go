package main

import (
	"testing"

	"github.com/nofmysfk/vertico/internal/app"
	"github.com/nofmysfk/vertico/internal/config"
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

func TestApplyDetectedSizeFillsUnsetDimensions(t *testing.T) {
	tty := ttyDetails{Detected: &ttyDetected{Source: "stdout", Width: 120, Height: 50}}

	cfg := app.Config{}
	applyDetectedSize(&cfg, tty)
	if cfg.Width != 120 || cfg.Height != 50 {
		t.Fatalf("expected detected size applied, got %dx%d", cfg.Width, cfg.Height)
	}

	cfg = app.Config{Width: 100, Height: 40}
	applyDetectedSize(&cfg, tty)
	if cfg.Width != 100 || cfg.Height != 40 {
		t.Fatalf("expected explicit size kept, got %dx%d", cfg.Width, cfg.Height)
	}

	cfg = app.Config{}
	applyDetectedSize(&cfg, ttyDetails{})
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Fatalf("expected no change without a detected terminal, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Placement: "bottom-of-frame",
			Rows:      10,
			HideInput: true,
			Width:     80,
			Height:    24,
			Verbose:   true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"placement": "bottom-of-frame",
			"rows":      "10",
			"hideInput": "true",
			"width":     "80",
			"height":    "24",
			"verbose":   "true",
		},
		Args: []string{"-placement", "bottom-of-frame"},
	}

	payload := startupTracePayload(cfg, ttyDetails{})

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["placement"] != "bottom-of-frame" {
		t.Fatalf("expected placement flag, got %v", flagsValue["placement"])
	}
	if flagsValue["rows"] != "10" {
		t.Fatalf("expected rows 10, got %v", flagsValue["rows"])
	}
	if flagsValue["hideInput"] != "true" {
		t.Fatalf("expected hideInput true, got %v", flagsValue["hideInput"])
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
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
