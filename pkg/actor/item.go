package actor

// Item is a world object: a quest item, weapon or key.
// Items compare by Name.
type Item struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Hidden   bool     `json:"hidden"`
	Alive    bool     `json:"alive"`
	Owner    string   `json:"owner,omitempty"` // character whose quest spawned the item

	statuses statusSet
}

// NewItem returns a visible, alive item with the given statuses.
func NewItem(name string, pos Position, statuses ...Status) (*Item, error) {
	it := &Item{
		Name:     name,
		Position: pos,
		Alive:    true,
		statuses: newStatusSet(ItemStatuses),
	}
	for _, st := range statuses {
		if err := it.AddStatus(st); err != nil {
			return nil, err
		}
	}
	return it, nil
}

func (it *Item) status() *statusSet {
	if it.statuses.vocab == nil {
		it.statuses = newStatusSet(ItemStatuses)
	}
	return &it.statuses
}

func (it *Item) AddStatus(st Status) error    { return it.status().add(st) }
func (it *Item) RemoveStatus(st Status) error { return it.status().remove(st) }
func (it *Item) HasStatus(st Status) bool     { return it.statuses.has(st) }
func (it *Item) Statuses() []Status           { return it.statuses.list() }

// Is reports whether other names the same item.
func (it *Item) Is(other *Item) bool {
	return it != nil && other != nil && it.Name == other.Name
}

// Clone returns a deep copy of the item.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	c := *it
	c.statuses = it.statuses.cloneOr(ItemStatuses)
	return &c
}
