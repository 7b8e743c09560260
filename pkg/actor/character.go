package actor

import (
	"maps"
	"slices"
	"strings"
)

const (
	PlayerName    = "Player"
	PrisonerTitle = "Prisoner"
	GuardTitle    = "Guard"
	WorldSpeaker  = "Indigo Prison" // narrator voice for world-level events
)

// Relationship values are clamped to [RelationshipMin, RelationshipMax].
const (
	RelationshipMin = -2
	RelationshipMax = 2
)

// Relationship holds one character's feelings toward another.
type Relationship struct {
	Trust int `json:"trust"` // -2 never believe, +2 always believe
	Like  int `json:"like"`  // -2 hate, +2 adore
}

func clamp(v int) int {
	return max(RelationshipMin, min(RelationshipMax, v))
}

// Clamped returns r with both values forced into range.
func (r Relationship) Clamped() Relationship {
	return Relationship{Trust: clamp(r.Trust), Like: clamp(r.Like)}
}

// Character is the player, a prisoner or a guard.
type Character struct {
	Name          string                  `json:"name"`
	Position      Position                `json:"position"`
	Hidden        bool                    `json:"hidden"`
	Goals         []Goal                  `json:"goals,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Inventory     []*Item                 `json:"inventory,omitempty"`
	Beliefs       BeliefSet               `json:"beliefs,omitempty"`

	statuses statusSet
}

// NewCharacter returns a visible character that is alive and mobile.
func NewCharacter(name string, pos Position) *Character {
	c := &Character{
		Name:          name,
		Position:      pos,
		Relationships: make(map[string]Relationship),
		Inventory:     make([]*Item, 0),
		Beliefs:       BeliefSet{},
		statuses:      newStatusSet(CharacterStatuses),
	}
	_ = c.AddStatus(StatusAlive)
	_ = c.AddStatus(StatusMobile)
	return c
}

func (c *Character) status() *statusSet {
	if c.statuses.vocab == nil {
		c.statuses = newStatusSet(CharacterStatuses)
	}
	return &c.statuses
}

func (c *Character) AddStatus(st Status) error    { return c.status().add(st) }
func (c *Character) RemoveStatus(st Status) error { return c.status().remove(st) }
func (c *Character) HasStatus(st Status) bool     { return c.statuses.has(st) }
func (c *Character) Statuses() []Status           { return c.statuses.list() }

// IsAlive is shorthand for HasStatus(StatusAlive).
func (c *Character) IsAlive() bool { return c.HasStatus(StatusAlive) }

// IsMobile is shorthand for HasStatus(StatusMobile).
func (c *Character) IsMobile() bool { return c.HasStatus(StatusMobile) }

// Relationship returns c's feelings toward name. Unknown names read as neutral.
func (c *Character) Relationship(name string) (Relationship, bool) {
	r, ok := c.Relationships[name]
	return r, ok
}

// SetRelationship stores c's feelings toward name, clamped to range.
func (c *Character) SetRelationship(name string, r Relationship) {
	if c.Relationships == nil {
		c.Relationships = make(map[string]Relationship)
	}
	c.Relationships[name] = r.Clamped()
}

// HasItem reports whether the named item is in c's inventory.
func (c *Character) HasItem(name string) bool {
	return c.InventoryItem(name) != nil
}

// InventoryItem returns the named item from c's inventory, or nil.
func (c *Character) InventoryItem(name string) *Item {
	if name == "" {
		return nil
	}
	for _, it := range c.Inventory {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// Give adds it to the inventory unless an item with that name is already held.
func (c *Character) Give(it *Item) {
	if it == nil || c.HasItem(it.Name) {
		return
	}
	c.Inventory = append(c.Inventory, it)
}

// Take removes the named item from the inventory and returns it.
func (c *Character) Take(name string) *Item {
	for i, it := range c.Inventory {
		if it.Name == name {
			c.Inventory = slices.Delete(c.Inventory, i, i+1)
			return it
		}
	}
	return nil
}

// IsPrisoner and IsGuard dispatch on the archetype title embedded in the name.
func (c *Character) IsPrisoner() bool { return IsPrisoner(c.Name) }
func (c *Character) IsGuard() bool    { return IsGuard(c.Name) }

func IsPrisoner(name string) bool { return strings.Contains(name, PrisonerTitle) }
func IsGuard(name string) bool    { return strings.Contains(name, GuardTitle) }

// Clone returns a deep copy of the character: statuses, goals, relationships,
// inventory and beliefs are all copied.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.statuses = c.statuses.cloneOr(CharacterStatuses)
	out.Goals = slices.Clone(c.Goals)
	out.Relationships = maps.Clone(c.Relationships)
	if out.Relationships == nil {
		out.Relationships = make(map[string]Relationship)
	}
	out.Inventory = make([]*Item, 0, len(c.Inventory))
	for _, it := range c.Inventory {
		out.Inventory = append(out.Inventory, it.Clone())
	}
	out.Beliefs = c.Beliefs.Clone()
	return &out
}
