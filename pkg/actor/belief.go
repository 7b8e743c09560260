package actor

import (
	"cmp"
	"maps"
	"slices"
)

// Predicate is the relation part of a belief triple.
type Predicate string

const (
	PredicateIntroduced  Predicate = "introduced"    // subject has introduced themselves
	PredicateWantsToKill Predicate = "wants_to_kill" // subject wants object dead
	PredicateWantsItem   Predicate = "wants_item"    // subject wants object (an item) brought back
	PredicateMustKill    Predicate = "must_kill"     // subject was told to kill object
)

// Belief is a (subject, predicate, object) fact held by a character.
// Object is empty for unary predicates.
type Belief struct {
	Subject   string    `json:"subject"`
	Predicate Predicate `json:"predicate"`
	Object    string    `json:"object,omitempty"`
}

// BeliefSet is the epistemic state of one character.
type BeliefSet map[Belief]struct{}

func (b BeliefSet) Add(belief Belief) {
	b[belief] = struct{}{}
}

func (b BeliefSet) Has(belief Belief) bool {
	_, ok := b[belief]
	return ok
}

// Knows reports whether the holder has been introduced to subject.
func (b BeliefSet) Knows(subject string) bool {
	return b.Has(Belief{Subject: subject, Predicate: PredicateIntroduced})
}

// List returns the beliefs in a stable order.
func (b BeliefSet) List() []Belief {
	out := slices.Collect(maps.Keys(b))
	slices.SortFunc(out, func(x, y Belief) int {
		return cmp.Or(
			cmp.Compare(x.Subject, y.Subject),
			cmp.Compare(x.Predicate, y.Predicate),
			cmp.Compare(x.Object, y.Object),
		)
	})
	return out
}

func (b BeliefSet) Clone() BeliefSet {
	out := maps.Clone(b)
	if out == nil {
		out = BeliefSet{}
	}
	return out
}
