package main

import (
	"math/rand/v2"
	"testing"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkerHeadsForVisibleItems(t *testing.T) {
	s := state.New(actor.Position{X: 100, Y: 100})
	require.NoError(t, s.AddCharacter(actor.NewCharacter("Guard Lokpol", actor.Position{X: 100, Y: 0})))
	shiv, err := actor.NewItem("shiv", actor.Position{X: 200, Y: 100})
	require.NoError(t, err)
	require.NoError(t, s.AddItem(shiv))

	w := &walker{rng: rand.New(rand.NewPCG(1, 1)), step: 10, width: 400, height: 400}
	target, ok := w.target(s)
	require.True(t, ok)
	assert.Equal(t, shiv.Position, target)
}

func TestWalkerVisitsEachCharacter(t *testing.T) {
	s := state.New(actor.Position{X: 100, Y: 100})
	near := actor.NewCharacter("Prisoner Qawas", actor.Position{X: 105, Y: 100})
	far := actor.NewCharacter("Guard Lokpol", actor.Position{X: 300, Y: 100})
	require.NoError(t, s.AddCharacter(near))
	require.NoError(t, s.AddCharacter(far))

	w := &walker{rng: rand.New(rand.NewPCG(1, 1)), step: 10, width: 400, height: 400}

	target, ok := w.target(s)
	require.True(t, ok)
	assert.Equal(t, near.Position, target)
	assert.True(t, w.visited[near.Name], "standing next to a character counts as a visit")

	target, _ = w.target(s)
	assert.Equal(t, far.Position, target)
}

func TestWalkerStaysInArena(t *testing.T) {
	s := state.New(actor.Position{X: 0, Y: 0})
	w := &walker{rng: rand.New(rand.NewPCG(7, 7)), step: 50, width: 100, height: 80}

	for range 200 {
		p := w.next(s)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 100.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 80.0)
		s.Player.Position = p
	}
}
