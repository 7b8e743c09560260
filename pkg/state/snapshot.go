package state

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/chat"
)

// Snapshot is the full world state at a tick boundary.
// Snapshots handed to the planner are never mutated; transitions work on a Clone.
type Snapshot struct {
	ID            uuid.UUID          `json:"id"` // session id, shared by every snapshot in a session
	Characters    []*actor.Character `json:"characters"`
	Items         []*actor.Item      `json:"items"`
	Player        *actor.Character   `json:"player"`
	Conversations chat.Conversations `json:"conversations"`
	Intensity     int                `json:"intensity"`
}

// New returns an empty snapshot with a fresh session id and a player at pos.
func New(pos actor.Position) *Snapshot {
	return &Snapshot{
		ID:            uuid.New(),
		Characters:    make([]*actor.Character, 0),
		Items:         make([]*actor.Item, 0),
		Player:        actor.NewCharacter(actor.PlayerName, pos),
		Conversations: chat.Conversations{},
	}
}

// Clone deep-copies every character, item and conversation.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		ID:            s.ID,
		Characters:    make([]*actor.Character, 0, len(s.Characters)),
		Items:         make([]*actor.Item, 0, len(s.Items)),
		Player:        s.Player.Clone(),
		Conversations: s.Conversations.Clone(),
		Intensity:     s.Intensity,
	}
	for _, c := range s.Characters {
		out.Characters = append(out.Characters, c.Clone())
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, it.Clone())
	}
	return out
}

// Equal reports whether two snapshots hold the same world state.
func (s *Snapshot) Equal(o *Snapshot) bool {
	return reflect.DeepEqual(s, o)
}

// Character looks a character up by name. The player is found by PlayerName.
func (s *Snapshot) Character(name string) *actor.Character {
	if name == "" {
		return nil
	}
	if s.Player != nil && s.Player.Name == name {
		return s.Player
	}
	for _, c := range s.Characters {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddCharacter appends c unless a character with the same name exists.
func (s *Snapshot) AddCharacter(c *actor.Character) error {
	if s.Character(c.Name) != nil {
		return fmt.Errorf("character %q already exists", c.Name)
	}
	s.Characters = append(s.Characters, c)
	return nil
}

// Item returns the named item lying in the world, or nil.
func (s *Snapshot) Item(name string) *actor.Item {
	if name == "" {
		return nil
	}
	for _, it := range s.Items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// FindItem looks for the named item in the world and then in every inventory.
// holder is nil when the item lies in the world.
func (s *Snapshot) FindItem(name string) (it *actor.Item, holder *actor.Character) {
	if it := s.Item(name); it != nil {
		return it, nil
	}
	if name == "" {
		return nil, nil
	}
	for _, c := range s.everyone() {
		if it := c.InventoryItem(name); it != nil {
			return it, c
		}
	}
	return nil, nil
}

// AllItems returns world items followed by every held item, characters first
// and the player last.
func (s *Snapshot) AllItems() []*actor.Item {
	out := slices.Clone(s.Items)
	for _, c := range s.everyone() {
		out = append(out, c.Inventory...)
	}
	return out
}

func (s *Snapshot) everyone() []*actor.Character {
	out := slices.Clone(s.Characters)
	if s.Player != nil {
		out = append(out, s.Player)
	}
	return out
}

// InWorld reports whether the named item lies in the world.
func (s *Snapshot) InWorld(name string) bool {
	return s.Item(name) != nil
}

// AddItem places it in the world unless an item with that name exists anywhere.
func (s *Snapshot) AddItem(it *actor.Item) error {
	if found, _ := s.FindItem(it.Name); found != nil {
		return fmt.Errorf("item %q already exists", it.Name)
	}
	s.Items = append(s.Items, it)
	return nil
}

// RemoveItem takes the named item out of the world and returns it.
func (s *Snapshot) RemoveItem(name string) *actor.Item {
	for i, it := range s.Items {
		if it.Name == name {
			s.Items = slices.Delete(s.Items, i, i+1)
			return it
		}
	}
	return nil
}

// PickUp moves a world item into holder's inventory and hides it.
func (s *Snapshot) PickUp(holder *actor.Character, name string) bool {
	if holder == nil {
		return false
	}
	it := s.RemoveItem(name)
	if it == nil {
		return false
	}
	it.Hidden = true
	holder.Give(it)
	return true
}

// UniqueItemName returns base, or base with a numeric suffix if base is taken.
func (s *Snapshot) UniqueItemName(base string) string {
	name := base
	for n := 2; ; n++ {
		if found, _ := s.FindItem(name); found == nil {
			return name
		}
		name = fmt.Sprintf("%s %d", base, n)
	}
}

// AddLine appends a line to the named conversation.
func (s *Snapshot) AddLine(conversation, speaker, text string) {
	if s.Conversations == nil {
		s.Conversations = chat.Conversations{}
	}
	s.Conversations.Append(conversation, chat.Line{Speaker: speaker, Text: text})
}

// MarkerKind distinguishes map markers.
type MarkerKind string

const (
	MarkerPlayer    MarkerKind = "player"
	MarkerCharacter MarkerKind = "character"
	MarkerItem      MarkerKind = "item"
)

// Marker is what a presentation layer needs to draw one entity.
type Marker struct {
	Name     string         `json:"name"`
	Kind     MarkerKind     `json:"kind"`
	Position actor.Position `json:"position"`
	Hidden   bool           `json:"hidden"`
	Alive    bool           `json:"alive"`
}

// Markers lists the player, then characters, then world items.
func (s *Snapshot) Markers() []Marker {
	out := make([]Marker, 0, len(s.Characters)+len(s.Items)+1)
	if s.Player != nil {
		out = append(out, Marker{Name: s.Player.Name, Kind: MarkerPlayer, Position: s.Player.Position, Alive: s.Player.IsAlive()})
	}
	for _, c := range s.Characters {
		out = append(out, Marker{Name: c.Name, Kind: MarkerCharacter, Position: c.Position, Hidden: c.Hidden, Alive: c.IsAlive()})
	}
	for _, it := range s.Items {
		out = append(out, Marker{Name: it.Name, Kind: MarkerItem, Position: it.Position, Hidden: it.Hidden, Alive: it.Alive})
	}
	return out
}
