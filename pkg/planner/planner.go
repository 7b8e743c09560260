// Package planner picks the best action for one character by exhaustive
// search with a two-ply lookahead.
package planner

import (
	"io"
	"log/slog"

	"github.com/jwebster45206/drama-engine/pkg/actions"
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/conditions"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// LookaheadPlies is how many hypothetical follow-up actions are scored
// beyond the immediate candidate.
const LookaheadPlies = 2

// Result is the action a character settled on.
type Result struct {
	Snapshot *state.Snapshot
	Action   actions.Kind
	Binding  actor.Binding
	Score    int
}

// Planner scores candidate actions against a character's goals.
type Planner struct {
	spawner actions.Spawner
	logger  *slog.Logger
}

// New returns a planner. The spawner places the winning action's items; the
// search places them on their owner. Each evaluation draws a single roll from
// the spawner and both the search and the winner use it.
func New(spawner actions.Spawner, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Planner{spawner: spawner, logger: logger}
}

// Evaluate enumerates every action in pool against every receiver (each
// character, then none) and every item (world and inventories, then none)
// with instigator acting. A candidate replaces the incumbent when its score
// is >= the best so far, starting from the score of s itself, so the last
// of several tied candidates wins. Nil means the character does nothing.
func (p *Planner) Evaluate(pool []*actions.Aggregate, s *state.Snapshot, instigator string) *Result {
	if s == nil {
		return nil
	}
	inst := s.Character(instigator)
	if inst == nil {
		return nil
	}
	goals := inst.Goals
	pool = distinct(pool)
	search := searchSpawner{}
	if p.spawner != nil {
		search.roll = p.spawner.Intn(rollSides)
	}

	best := conditions.Score(goals, s)
	baseline := best
	var winner *Result
	considered := 0

	for _, a := range pool {
		for _, b := range bindings(s, instigator) {
			if !a.PreconditionsHold(s, b) {
				continue
			}
			considered++
			cand := a.Apply(s, b, search)
			score := conditions.Score(goals, cand) + p.lookahead(pool, cand, instigator, goals, search)
			if score >= best {
				best = score
				winner = &Result{Action: a.Action, Binding: b, Score: score}
			}
		}
	}

	if winner == nil {
		p.logger.Debug("no action chosen",
			"instigator", instigator,
			"candidates", considered,
			"baseline", baseline)
		return nil
	}

	var sp actions.Spawner
	if p.spawner != nil {
		sp = pinnedSpawner{Spawner: p.spawner, roll: search.roll}
	}
	winner.Snapshot = actions.Apply(winner.Action, s, winner.Binding, sp)
	p.logger.Debug("action chosen",
		"instigator", instigator,
		"action", winner.Action,
		"receiver", winner.Binding.Receiver,
		"item", winner.Binding.Item,
		"score", winner.Score,
		"baseline", baseline,
		"candidates", considered)
	return winner
}

// lookahead sums the goal scores of up to LookaheadPlies best follow-ups,
// checked only against preconditions that do not read the player's position.
func (p *Planner) lookahead(pool []*actions.Aggregate, s *state.Snapshot, instigator string, goals []actor.Goal, sp searchSpawner) int {
	bonus := 0
	cur := s
	for range LookaheadPlies {
		next, score := bestFuture(pool, cur, instigator, goals, sp)
		if next == nil {
			break
		}
		bonus += score
		cur = next
	}
	return bonus
}

func bestFuture(pool []*actions.Aggregate, s *state.Snapshot, instigator string, goals []actor.Goal, sp searchSpawner) (*state.Snapshot, int) {
	best := conditions.Score(goals, s)
	var winner *state.Snapshot
	for _, a := range pool {
		for _, b := range bindings(s, instigator) {
			if !a.FuturePreconditionsHold(s, b) {
				continue
			}
			cand := a.Apply(s, b, sp)
			if score := conditions.Score(goals, cand); score >= best {
				best = score
				winner = cand
			}
		}
	}
	return winner, best
}

// bindings lists every (receiver, item) pairing for instigator in
// enumeration order.
func bindings(s *state.Snapshot, instigator string) []actor.Binding {
	receivers := make([]string, 0, len(s.Characters)+1)
	for _, c := range s.Characters {
		receivers = append(receivers, c.Name)
	}
	receivers = append(receivers, "")

	all := s.AllItems()
	items := make([]string, 0, len(all)+1)
	for _, it := range all {
		items = append(items, it.Name)
	}
	items = append(items, "")

	out := make([]actor.Binding, 0, len(receivers)*len(items))
	for _, r := range receivers {
		for _, it := range items {
			out = append(out, actor.Binding{Instigator: instigator, Receiver: r, Item: it})
		}
	}
	return out
}

// distinct keeps the last occurrence of each aggregate. Under >= replacement
// a repeated aggregate only matters at its last position, so this leaves the
// outcome unchanged.
func distinct(pool []*actions.Aggregate) []*actions.Aggregate {
	last := make(map[*actions.Aggregate]int, len(pool))
	for i, a := range pool {
		last[a] = i
	}
	out := make([]*actions.Aggregate, 0, len(last))
	for i, a := range pool {
		if a != nil && last[a] == i {
			out = append(out, a)
		}
	}
	return out
}

// rollSides bounds the roll drawn per evaluation; every spawn coin flip is a
// two-sided roll.
const rollSides = 2

// searchSpawner keeps the search free of fresh randomness: items land on
// their owner and every roll repeats the one drawn for the evaluation.
type searchSpawner struct {
	roll int
}

func (searchSpawner) ItemLocation(s *state.Snapshot, owner string) (actor.Position, bool) {
	if c := s.Character(owner); c != nil {
		return c.Position, true
	}
	return actor.Position{}, false
}

func (s searchSpawner) Intn(n int) int { return pinRoll(s.roll, n) }

// pinnedSpawner places items with the real spawner but replays the roll the
// search already scored.
type pinnedSpawner struct {
	actions.Spawner
	roll int
}

func (s pinnedSpawner) Intn(n int) int { return pinRoll(s.roll, n) }

func pinRoll(roll, n int) int {
	if n <= 0 {
		return 0
	}
	return roll % n
}
