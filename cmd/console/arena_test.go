package main

import (
	"testing"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaGrid(t *testing.T) {
	markers := []state.Marker{
		{Name: actor.PlayerName, Kind: state.MarkerPlayer, Position: actor.Position{X: 0, Y: 0}, Alive: true},
		{Name: "Prisoner Qawas", Kind: state.MarkerCharacter, Position: actor.Position{X: 100, Y: 100}, Alive: true},
		{Name: "Guard Lokpol", Kind: state.MarkerCharacter, Position: actor.Position{X: 50, Y: 0}, Hidden: true, Alive: true},
		{Name: "Guard Rinvo", Kind: state.MarkerCharacter, Position: actor.Position{X: 100, Y: 0}},
		{Name: "shiv", Kind: state.MarkerItem, Position: actor.Position{X: 0, Y: 100}, Alive: true},
	}

	grid := arenaGrid(markers, 100, 100, 5, 3)
	require.Len(t, grid, 3)
	require.Len(t, grid[0], 5)

	assert.Equal(t, glyphPlayer, grid[0][0])
	assert.Equal(t, glyphFloor, grid[0][2], "hidden characters are not drawn")
	assert.Equal(t, glyphDead, grid[0][4])
	assert.Equal(t, glyphItem, grid[2][0])
	assert.Equal(t, glyphPrisoner, grid[2][4])
}

func TestArenaGridClampsAndLayers(t *testing.T) {
	markers := []state.Marker{
		{Name: actor.PlayerName, Kind: state.MarkerPlayer, Position: actor.Position{X: 500, Y: -20}, Alive: true},
		{Name: "Guard Lokpol", Kind: state.MarkerCharacter, Position: actor.Position{X: 100, Y: 0}, Alive: true},
	}

	grid := arenaGrid(markers, 100, 100, 4, 4)
	assert.Equal(t, glyphPlayer, grid[0][3], "player is clamped and drawn over the guard")
	assert.Nil(t, arenaGrid(markers, 100, 100, 0, 4))
}
