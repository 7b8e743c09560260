package state

import (
	"slices"

	"github.com/jwebster45206/drama-engine/pkg/chat"
)

// Delta is a compact description of what changed between two snapshots.
// Presentation layers use it to append only new dialogue and flash map changes.
type Delta struct {
	Revealed  []string               `json:"revealed,omitempty"`  // characters that stopped hiding
	Died      []string               `json:"died,omitempty"`      // characters that lost Alive
	Spawned   []string               `json:"spawned,omitempty"`   // items new to the world
	PickedUp  []string               `json:"picked_up,omitempty"` // items that moved into the player's inventory
	Lines     map[string][]chat.Line `json:"lines,omitempty"`     // new lines per conversation
	Intensity int                    `json:"intensity"`
}

// Diff compares next against prev. A nil prev treats everything in next as new.
func Diff(prev, next *Snapshot) *Delta {
	d := &Delta{Lines: make(map[string][]chat.Line)}
	if next == nil {
		return d
	}
	d.Intensity = next.Intensity
	if prev == nil {
		prev = &Snapshot{}
	}

	for _, c := range next.Characters {
		old := prev.Character(c.Name)
		if old == nil {
			continue
		}
		if old.Hidden && !c.Hidden {
			d.Revealed = append(d.Revealed, c.Name)
		}
		if old.IsAlive() && !c.IsAlive() {
			d.Died = append(d.Died, c.Name)
		}
	}

	for _, it := range next.Items {
		if found, _ := prev.FindItem(it.Name); found == nil {
			d.Spawned = append(d.Spawned, it.Name)
		}
	}

	if next.Player != nil {
		for _, it := range next.Player.Inventory {
			if prev.Player == nil || !prev.Player.HasItem(it.Name) {
				d.PickedUp = append(d.PickedUp, it.Name)
			}
		}
	}

	for _, key := range next.Conversations.Keys() {
		if lines := next.Conversations.Since(key, prev.Conversations.Len(key)); len(lines) > 0 {
			d.Lines[key] = lines
		}
	}
	return d
}

// IsEmpty reports whether nothing visible changed.
func (d *Delta) IsEmpty() bool {
	return d == nil || (len(d.Revealed) == 0 &&
		len(d.Died) == 0 &&
		len(d.Spawned) == 0 &&
		len(d.PickedUp) == 0 &&
		len(d.Lines) == 0)
}

// Speakers returns the conversations with new lines, sorted.
func (d *Delta) Speakers() []string {
	out := make([]string, 0, len(d.Lines))
	for k := range d.Lines {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
