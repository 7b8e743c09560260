// Package narrate turns snapshot deltas into the short event sentences the
// commands print between dialogue lines.
package narrate

import (
	"fmt"

	"github.com/jwebster45206/drama-engine/pkg/state"
)

// Events describes reveals, spawns and pickups in d.
func Events(d *state.Delta) []string {
	if d == nil {
		return nil
	}
	var out []string
	for _, name := range d.Revealed {
		out = append(out, fmt.Sprintf("%s steps out of the shadows.", name))
	}
	for _, name := range d.Spawned {
		out = append(out, fmt.Sprintf("You notice %s nearby.", name))
	}
	for _, name := range d.PickedUp {
		out = append(out, fmt.Sprintf("You pick up %s.", name))
	}
	return out
}

// Deaths describes the characters that died in d.
func Deaths(d *state.Delta) []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.Died))
	for _, name := range d.Died {
		out = append(out, fmt.Sprintf("%s is dead.", name))
	}
	return out
}

// Intensity announces a tier change, or returns "" when there was none.
func Intensity(prev, next *state.Snapshot) string {
	if prev == nil || next == nil || prev.Intensity == next.Intensity {
		return ""
	}
	return fmt.Sprintf("The tension rises (intensity %d).", next.Intensity)
}
