// Package placement finds spots in the arena for new characters and items.
package placement

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// Anchor tries before an item falls back to free placement.
const anchorTries = 10

// Config is the arena geometry and search budgets.
type Config struct {
	Width, Height float64
	Margin        float64 // inset from each edge that counts as on screen
	MinDistance   float64 // minimum separation between characters
	Jitter        float64 // max offset of an item from its anchor
	Attempts      int     // character placement budget
	ItemAttempts  int     // item placement budget when no anchor works
}

// Result is a placement outcome. OK is false when the attempt budget ran out
// and Position is only the last candidate tried.
type Result struct {
	Position actor.Position
	OK       bool
	Attempts int
}

// Service places entities. It is not safe for concurrent use.
type Service struct {
	cfg    Config
	rng    *rand.Rand
	logger *slog.Logger
}

// New returns a service drawing from rng.
func New(cfg Config, rng *rand.Rand, logger *slog.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	if cfg.ItemAttempts <= 0 {
		cfg.ItemAttempts = 1
	}
	return &Service{cfg: cfg, rng: rng, logger: logger}
}

// PlaceCharacter samples a spot uniformly, pushes it directly away from each
// character closer than the minimum distance, and accepts it once it lies on
// screen and clear of everyone.
func (s *Service) PlaceCharacter(others []actor.Position, attempts int) Result {
	if attempts <= 0 {
		attempts = s.cfg.Attempts
	}
	var cand actor.Position
	for i := 1; i <= attempts; i++ {
		cand = actor.Position{X: s.rng.Float64() * s.cfg.Width, Y: s.rng.Float64() * s.cfg.Height}
		cand = s.pushAway(cand, others)
		if s.OnScreen(cand) && s.clear(cand, others) {
			return Result{Position: cand, OK: true, Attempts: i}
		}
	}
	s.logger.Warn("placement budget exhausted",
		"attempts", attempts,
		"x", cand.X,
		"y", cand.Y)
	return Result{Position: cand, OK: false, Attempts: attempts}
}

// pushAway moves p by exactly MinDistance away from every character it is too
// close to. Coincident points are pushed in a random direction.
func (s *Service) pushAway(p actor.Position, others []actor.Position) actor.Position {
	for _, o := range others {
		if !actor.Within(p, o, s.cfg.MinDistance) {
			continue
		}
		dir := p.Sub(o).Unit()
		if dir == (actor.Position{}) {
			dir = s.randomDirection()
		}
		p = p.Add(dir.Scale(s.cfg.MinDistance))
	}
	return p
}

func (s *Service) randomDirection() actor.Position {
	for {
		d := actor.Position{X: s.rng.Float64()*2 - 1, Y: s.rng.Float64()*2 - 1}
		if u := d.Unit(); u != (actor.Position{}) {
			return u
		}
	}
}

func (s *Service) clear(p actor.Position, others []actor.Position) bool {
	for _, o := range others {
		if actor.Within(p, o, s.cfg.MinDistance) {
			return false
		}
	}
	return true
}

// OnScreen reports whether p lies inside the arena inset by the margin.
func (s *Service) OnScreen(p actor.Position) bool {
	m := s.cfg.Margin
	return p.X >= m && p.X <= s.cfg.Width-m && p.Y >= m && p.Y <= s.cfg.Height-m
}

// PlaceItem prefers a spot near a random living character other than owner,
// with jitter, and falls back to PlaceCharacter.
func (s *Service) PlaceItem(snap *state.Snapshot, owner string) Result {
	var anchors []actor.Position
	var taken []actor.Position
	if snap != nil {
		for _, c := range snap.Characters {
			taken = append(taken, c.Position)
			if c.Name != owner && c.IsAlive() {
				anchors = append(anchors, c.Position)
			}
		}
		if snap.Player != nil {
			taken = append(taken, snap.Player.Position)
		}
	}

	if len(anchors) > 0 {
		for i := 1; i <= anchorTries; i++ {
			a := anchors[s.rng.IntN(len(anchors))]
			cand := a.Add(actor.Position{
				X: (s.rng.Float64()*2 - 1) * s.cfg.Jitter,
				Y: (s.rng.Float64()*2 - 1) * s.cfg.Jitter,
			})
			if s.OnScreen(cand) {
				return Result{Position: cand, OK: true, Attempts: i}
			}
		}
	}
	return s.PlaceCharacter(taken, s.cfg.ItemAttempts)
}

// ItemLocation implements actions.Spawner.
func (s *Service) ItemLocation(snap *state.Snapshot, owner string) (actor.Position, bool) {
	r := s.PlaceItem(snap, owner)
	return r.Position, r.OK
}

// Intn implements actions.Spawner.
func (s *Service) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}
