package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jwebster45206/drama-engine/internal/config"
	"github.com/jwebster45206/drama-engine/internal/logger"
	"github.com/jwebster45206/drama-engine/pkg/drama"
	"github.com/jwebster45206/drama-engine/pkg/tuning"
)

const defaultLogFile = "drama-console.log"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The UI owns the terminal, so logs always go to a file.
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.Setup(cfg, logFile)

	t := tuning.Default()
	if cfg.TuningFile != "" {
		if t, err = tuning.Load(cfg.TuningFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
			os.Exit(1)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	m := drama.New(t, rand.New(rand.NewPCG(seed, seed)), log)
	snap := m.Initialize(cfg.ArenaWidth, cfg.ArenaHeight)
	logger.WithSession(log, snap.ID).Info("Console session started", "seed", seed)

	p := tea.NewProgram(NewConsoleUI(cfg, m, snap), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
