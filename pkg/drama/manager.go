// Package drama is the drama manager: it paces the story through intensity
// tiers, decides when characters re-plan, and falls back to world-level
// escalation when nobody acts.
package drama

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jwebster45206/drama-engine/pkg/actions"
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/placement"
	"github.com/jwebster45206/drama-engine/pkg/planner"
	"github.com/jwebster45206/drama-engine/pkg/state"
	"github.com/jwebster45206/drama-engine/pkg/tuning"
)

var (
	ErrNotStarted       = errors.New("drama manager not started")
	ErrUnknownCharacter = errors.New("unknown character")
	ErrEmptyLine        = errors.New("empty line")
)

// Manager owns the current snapshot and the pacing bookkeeping.
// It is not safe for concurrent use.
type Manager struct {
	tuning   tuning.Tuning
	registry *actions.Registry
	rng      *rand.Rand
	base     *slog.Logger
	logger   *slog.Logger // base plus session

	placer  *placement.Service
	planner *planner.Planner

	current       *state.Snapshot
	tier          int
	remaining     time.Duration
	lastTriggered string
	resolved      bool
}

// New returns a manager. Call Initialize or Start before Advance.
func New(t tuning.Tuning, rng *rand.Rand, logger *slog.Logger) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		tuning:   t,
		registry: actions.NewRegistry(actions.Radii{Reveal: t.RevealRadius, Interact: t.InteractRadius}),
		rng:      rng,
		base:     logger,
		logger:   logger,
	}
}

// Start begins a session from snap in an arena of the given size.
func (m *Manager) Start(snap *state.Snapshot, width, height float64) {
	m.logger = m.base
	if snap != nil {
		snap.Intensity = 0
		m.logger = m.base.With("session", snap.ID.String())
	}

	m.placer = placement.New(placement.Config{
		Width:        width,
		Height:       height,
		Margin:       m.tuning.Margin,
		MinDistance:  m.tuning.MinSeparation,
		Jitter:       m.tuning.ItemJitter,
		Attempts:     m.tuning.PlacementAttempts,
		ItemAttempts: m.tuning.ItemPlacementAttempts,
	}, m.rng, m.logger)
	m.planner = planner.New(m.placer, m.logger)

	m.current = snap
	m.tier = 0
	m.remaining = m.tuning.Budget(0)
	m.lastTriggered = ""
	m.resolved = false

	m.logger.Info("drama started",
		"width", width,
		"height", height,
		"tiers", m.tuning.Terminal())
}

// Advance moves the story one tick: the player is at pos and elapsed time has
// passed. It returns the new snapshot, or (nil, false) once the story has
// reached its terminal tier.
func (m *Manager) Advance(pos actor.Position, elapsed time.Duration) (*state.Snapshot, bool) {
	if m.resolved || m.current == nil {
		return nil, false
	}

	next := m.current.Clone()
	next.Player.Position = pos

	forced := false
	m.remaining -= elapsed
	if m.remaining <= 0 {
		m.tier++
		m.lastTriggered = ""
		if m.tier >= m.tuning.Terminal() {
			m.resolved = true
			m.current = next
			m.logger.Info("story resolved", "tier", m.tier)
			return nil, false
		}
		m.remaining = m.tuning.Budget(m.tier)
		forced = true
		m.logger.Info("intensity raised", "tier", m.tier, "budget", m.remaining)
	}
	next.Intensity = m.tier

	triggered := m.proximity(next)
	if forced || triggered {
		next = m.replan(next)
	}

	m.current = next
	return next, true
}

// proximity handles reveal, interact and pickup triggers on s.
func (m *Manager) proximity(s *state.Snapshot) bool {
	player := s.Player.Position
	triggered := false

	for _, c := range s.Characters {
		if triggered || !c.IsAlive() || c.Name == m.lastTriggered {
			continue
		}
		radius := m.tuning.InteractRadius
		if c.Hidden {
			radius = m.tuning.RevealRadius
		}
		if actor.Within(player, c.Position, radius) {
			m.lastTriggered = c.Name
			triggered = true
			m.logger.Debug("character in range", "character", c.Name, "hidden", c.Hidden)
		}
	}

	var picked []string
	for _, it := range s.Items {
		if !it.Hidden && actor.Within(player, it.Position, m.tuning.InteractRadius) {
			picked = append(picked, it.Name)
		}
	}
	for _, name := range picked {
		if s.PickUp(s.Player, name) {
			triggered = true
			m.logger.Info("item picked up", "item", name)
		}
	}
	return triggered
}

// replan asks every character for its best action against the accumulated
// pool; the last one whose action changes the world wins. If nobody does, the
// first applicable drama manager action of the next tier fires.
func (m *Manager) replan(base *state.Snapshot) *state.Snapshot {
	pool := m.registry.Pool(m.tier)

	var chosen *planner.Result
	for _, c := range base.Characters {
		res := m.planner.Evaluate(pool, base, c.Name)
		if res == nil {
			continue
		}
		if res.Snapshot.Equal(base) {
			m.logger.Debug("choice changed nothing", "character", c.Name, "action", res.Action)
			continue
		}
		chosen = res
	}

	result := base
	if chosen != nil {
		result = chosen.Snapshot
		m.logger.Info("character acted",
			"character", chosen.Binding.Instigator,
			"action", chosen.Action,
			"receiver", chosen.Binding.Receiver,
			"item", chosen.Binding.Item,
			"score", chosen.Score)
	} else {
		for _, a := range m.registry.DMActions(m.tier + 1) {
			if s, ok := a.TryApply(base, actor.Binding{}, m.placer); ok {
				result = s
				m.logger.Info("drama manager acted", "action", a.Action, "tier", m.tier)
				break
			}
		}
	}

	if !result.Equal(base) {
		m.lastTriggered = ""
	}
	return result
}

// Say records a free-text line from the player in the addressed character's
// conversation.
func (m *Manager) Say(to, text string) (*state.Snapshot, error) {
	if m.current == nil {
		return nil, ErrNotStarted
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyLine
	}
	c := m.current.Character(to)
	if c == nil || c == m.current.Player {
		return nil, fmt.Errorf("say to %q: %w", to, ErrUnknownCharacter)
	}
	next := m.current.Clone()
	next.AddLine(c.Name, next.Player.Name, text)
	m.current = next
	return next, nil
}

// Current returns the latest snapshot.
func (m *Manager) Current() *state.Snapshot { return m.current }

// Tier returns the current intensity tier.
func (m *Manager) Tier() int { return m.tier }

// Remaining returns what is left of the current tier's time budget.
func (m *Manager) Remaining() time.Duration { return m.remaining }

// LastTriggered names the character whose proximity last caused a re-plan.
func (m *Manager) LastTriggered() string { return m.lastTriggered }

// Resolved reports whether the story has reached its terminal tier.
func (m *Manager) Resolved() bool { return m.resolved }
