package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. A .env file, if present, is loaded
// by the commands before Load is called.
type Config struct {
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelName string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"LOG_FILE"` // empty logs to stderr

	TuningFile string `env:"DRAMA_TUNING_FILE"` // empty uses the built-in tuning
	Seed       uint64 `env:"DRAMA_SEED"`        // 0 picks a random seed

	ArenaWidth   float64       `env:"ARENA_WIDTH" envDefault:"800"`
	ArenaHeight  float64       `env:"ARENA_HEIGHT" envDefault:"600"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"250ms"`

	LogLevel slog.Level `env:"-"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)

	if cfg.ArenaWidth <= 0 || cfg.ArenaHeight <= 0 {
		return nil, fmt.Errorf("arena must have positive size, got %vx%v", cfg.ArenaWidth, cfg.ArenaHeight)
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}
	return cfg, nil
}

// IsProduction reports whether logs should be machine readable.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
