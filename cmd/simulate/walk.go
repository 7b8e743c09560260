package main

import (
	"math"
	"math/rand/v2"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// wanderChance is how often the walker takes a random step instead of
// heading for its target.
const wanderChance = 0.2

// walker moves the simulated player: it heads for visible items first, then
// visits each living character in turn, and wanders now and then.
type walker struct {
	rng    *rand.Rand
	step   float64
	width  float64
	height float64

	visited map[string]bool
}

func (w *walker) next(s *state.Snapshot) actor.Position {
	pos := s.Player.Position
	if w.visited == nil {
		w.visited = make(map[string]bool)
	}

	target, ok := w.target(s)
	var dir actor.Position
	if ok && w.rng.Float64() >= wanderChance {
		dir = target.Sub(pos).Unit()
	}
	if dir == (actor.Position{}) {
		a := w.rng.Float64() * 2 * math.Pi
		dir = actor.Position{X: math.Cos(a), Y: math.Sin(a)}
	}

	step := w.step
	if ok && actor.Within(pos, target, step) {
		step = math.Sqrt(actor.DistSq(pos, target))
	}
	return w.clamp(pos.Add(dir.Scale(step)))
}

func (w *walker) target(s *state.Snapshot) (actor.Position, bool) {
	pos := s.Player.Position

	best, found := actor.Position{}, false
	bestDist := math.Inf(1)
	for _, it := range s.Items {
		if it.Hidden {
			continue
		}
		if d := actor.DistSq(pos, it.Position); d < bestDist {
			best, bestDist, found = it.Position, d, true
		}
	}
	if found {
		return best, true
	}

	var name string
	for _, c := range s.Characters {
		if !c.IsAlive() || w.visited[c.Name] {
			continue
		}
		if d := actor.DistSq(pos, c.Position); d < bestDist {
			best, bestDist, name, found = c.Position, d, c.Name, true
		}
	}
	if !found {
		if len(w.visited) == 0 {
			return actor.Position{}, false
		}
		clear(w.visited)
		return w.target(s)
	}
	if actor.Within(pos, best, w.step) {
		w.visited[name] = true
	}
	return best, true
}

func (w *walker) clamp(p actor.Position) actor.Position {
	p.X = min(max(p.X, 0), w.width)
	p.Y = min(max(p.Y, 0), w.height)
	return p
}
