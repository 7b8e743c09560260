package narrate

import (
	"testing"

	"github.com/jwebster45206/drama-engine/pkg/state"
	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	d := &state.Delta{
		Revealed: []string{"Prisoner Qawas"},
		Spawned:  []string{"Prisoner Qawas's shiv"},
		PickedUp: []string{"Guard Lokpol's key"},
		Died:     []string{"Guard Lokpol"},
	}

	assert.Equal(t, []string{
		"Prisoner Qawas steps out of the shadows.",
		"You notice Prisoner Qawas's shiv nearby.",
		"You pick up Guard Lokpol's key.",
	}, Events(d))
	assert.Equal(t, []string{"Guard Lokpol is dead."}, Deaths(d))

	assert.Nil(t, Events(nil))
	assert.Empty(t, Deaths(&state.Delta{}))
}

func TestIntensity(t *testing.T) {
	prev := &state.Snapshot{Intensity: 1}
	next := &state.Snapshot{Intensity: 2}

	assert.Equal(t, "The tension rises (intensity 2).", Intensity(prev, next))
	assert.Empty(t, Intensity(next, next))
	assert.Empty(t, Intensity(nil, next))
}
