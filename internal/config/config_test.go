package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENVIRONMENT", "LOG_LEVEL", "LOG_FILE", "DRAMA_TUNING_FILE", "DRAMA_SEED", "ARENA_WIDTH", "ARENA_HEIGHT", "TICK_INTERVAL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected development, got %q", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.ArenaWidth != 800 || cfg.ArenaHeight != 600 {
		t.Errorf("expected 800x600 arena, got %vx%v", cfg.ArenaWidth, cfg.ArenaHeight)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms tick, got %s", cfg.TickInterval)
	}
	if cfg.Seed != 0 || cfg.TuningFile != "" {
		t.Errorf("expected no seed or tuning file, got %d %q", cfg.Seed, cfg.TuningFile)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("DRAMA_SEED", "1234")
	t.Setenv("ARENA_WIDTH", "1024.5")
	t.Setenv("TICK_INTERVAL", "1s")
	t.Setenv("DRAMA_TUNING_FILE", "tuning.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("expected warn level, got %v", cfg.LogLevel)
	}
	if cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.ArenaWidth != 1024.5 {
		t.Errorf("expected width 1024.5, got %v", cfg.ArenaWidth)
	}
	if cfg.TickInterval != time.Second {
		t.Errorf("expected 1s tick, got %s", cfg.TickInterval)
	}
	if cfg.TuningFile != "tuning.yaml" {
		t.Errorf("expected tuning.yaml, got %q", cfg.TuningFile)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad seed", "DRAMA_SEED", "-1"},
		{"bad duration", "TICK_INTERVAL", "soon"},
		{"zero width", "ARENA_WIDTH", "0"},
		{"negative tick", "TICK_INTERVAL", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
