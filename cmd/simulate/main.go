package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jwebster45206/drama-engine/internal/config"
	"github.com/jwebster45206/drama-engine/internal/logger"
	"github.com/jwebster45206/drama-engine/internal/narrate"
	"github.com/jwebster45206/drama-engine/pkg/drama"
	"github.com/jwebster45206/drama-engine/pkg/state"
	"github.com/jwebster45206/drama-engine/pkg/tuning"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const wrapWidth = 72

func main() {
	ticks := flag.Int("ticks", 5000, "maximum number of ticks to simulate")
	opening := flag.String("opening", "", "opening to start from (cellblock, patrol, lights_out); random when empty")
	seed := flag.Uint64("seed", 0, "random seed; overrides DRAMA_SEED when non-zero")
	step := flag.Float64("step", 8, "distance the player walks per tick")
	beliefs := flag.Bool("beliefs", false, "print what the player learned at the end")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLog(cfg.LogFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log := logger.Setup(cfg, logOut)

	t := tuning.Default()
	if cfg.TuningFile != "" {
		if t, err = tuning.Load(cfg.TuningFile); err != nil {
			logger.WithError(log, err).Error("Failed to load tuning")
			os.Exit(1)
		}
	}

	if *seed == 0 {
		*seed = cfg.Seed
	}
	if *seed == 0 {
		*seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(*seed, *seed))

	m := drama.New(t, rng, log)
	var snap *state.Snapshot
	if *opening == "" {
		snap = m.Initialize(cfg.ArenaWidth, cfg.ArenaHeight)
	} else if snap, err = m.InitializeWith(drama.Opening(*opening), cfg.ArenaWidth, cfg.ArenaHeight); err != nil {
		logger.WithError(log, err).Error("Failed to start session")
		os.Exit(1)
	}
	log = logger.WithSession(log, snap.ID)
	log.Info("Simulation started", "seed", *seed, "ticks", *ticks)

	fmt.Printf("Session %s (seed %d)\n", snap.ID, *seed)
	for _, c := range snap.Characters {
		fmt.Printf("  %s at (%.0f, %.0f)\n", c.Name, c.Position.X, c.Position.Y)
	}
	fmt.Println()

	w := &walker{rng: rng, step: *step, width: cfg.ArenaWidth, height: cfg.ArenaHeight}
	prev := snap
	n := 0
	for ; n < *ticks; n++ {
		pos := w.next(prev)
		next, ok := m.Advance(pos, cfg.TickInterval)
		if !ok {
			break
		}
		printDelta(os.Stdout, n, prev, next)
		prev = next
	}

	printSummary(os.Stdout, m, n, *beliefs)
	log.Info("Simulation finished", "ticks", n, "tier", m.Tier(), "resolved", m.Resolved())
}

func openLog(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return fallback, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func printDelta(w io.Writer, tick int, prev, next *state.Snapshot) {
	if msg := narrate.Intensity(prev, next); msg != "" {
		fmt.Fprintf(w, "== tick %d: %s ==\n", tick, msg)
	}
	d := state.Diff(prev, next)
	if d.IsEmpty() {
		return
	}

	for _, e := range narrate.Events(d) {
		fmt.Fprintf(w, "[%d] %s\n", tick, e)
	}
	for _, conv := range d.Speakers() {
		for _, line := range d.Lines[conv] {
			text := wordwrap.String(line.Speaker+": "+line.Text, wrapWidth)
			fmt.Fprintf(w, "[%d]\n%s\n", tick, indent.String(text, 4))
		}
	}
	for _, e := range narrate.Deaths(d) {
		fmt.Fprintf(w, "[%d] %s\n", tick, e)
	}
}

func printSummary(w io.Writer, m *drama.Manager, ticks int, beliefs bool) {
	s := m.Current()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "After %d ticks: tier %d, resolved %t\n", ticks, m.Tier(), m.Resolved())

	var alive, dead []string
	for _, c := range s.Characters {
		if c.IsAlive() {
			alive = append(alive, c.Name)
		} else {
			dead = append(dead, c.Name)
		}
	}
	fmt.Fprintf(w, "  alive: %s\n", orNone(alive))
	fmt.Fprintf(w, "  dead: %s\n", orNone(dead))

	var held []string
	for _, it := range s.Player.Inventory {
		held = append(held, it.Name)
	}
	fmt.Fprintf(w, "  carrying: %s\n", orNone(held))

	if beliefs {
		for _, b := range s.Player.Beliefs.List() {
			fmt.Fprintf(w, "  knows: %s %s %s\n", b.Subject, b.Predicate, b.Object)
		}
	}
}

func orNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
