package actor

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownStatus is returned when a status outside an entity's vocabulary
// is added or removed.
var ErrUnknownStatus = errors.New("unknown status")

// Status is a binary world fact attached to a character or item.
type Status string

const (
	StatusAlive  Status = "Alive"
	StatusMobile Status = "Mobile"

	StatusLethal     Status = "Lethal"
	StatusLiberating Status = "Liberating"
	StatusDistance   Status = "Distance" // lethal from afar
)

// Closed vocabularies per entity kind.
var (
	CharacterStatuses = []Status{StatusAlive, StatusMobile}
	ItemStatuses      = []Status{StatusLethal, StatusLiberating, StatusDistance}
)

// statusSet is a set restricted to one vocabulary.
type statusSet struct {
	vocab []Status
	set   map[Status]struct{}
}

func newStatusSet(vocab []Status) statusSet {
	return statusSet{vocab: vocab, set: make(map[Status]struct{})}
}

func (s *statusSet) check(st Status) error {
	if !slices.Contains(s.vocab, st) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, st)
	}
	return nil
}

func (s *statusSet) add(st Status) error {
	if err := s.check(st); err != nil {
		return err
	}
	if s.set == nil {
		s.set = make(map[Status]struct{})
	}
	s.set[st] = struct{}{}
	return nil
}

func (s *statusSet) remove(st Status) error {
	if err := s.check(st); err != nil {
		return err
	}
	delete(s.set, st)
	return nil
}

func (s statusSet) has(st Status) bool {
	_, ok := s.set[st]
	return ok
}

// list returns statuses in vocabulary order.
func (s statusSet) list() []Status {
	out := make([]Status, 0, len(s.set))
	for _, st := range s.vocab {
		if s.has(st) {
			out = append(out, st)
		}
	}
	return out
}

// cloneOr copies s, falling back to vocab when s was never initialized.
func (s statusSet) cloneOr(vocab []Status) statusSet {
	if s.vocab == nil {
		s.vocab = vocab
	}
	return s.clone()
}

func (s statusSet) clone() statusSet {
	out := statusSet{vocab: s.vocab, set: maps.Clone(s.set)}
	if out.set == nil {
		out.set = make(map[Status]struct{})
	}
	return out
}
