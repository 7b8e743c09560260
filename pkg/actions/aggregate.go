package actions

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/conditions"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// ErrPreconditionsNotMet is returned by Evaluate when an action is invoked
// without its preconditions holding.
var ErrPreconditionsNotMet = errors.New("preconditions not met")

// Aggregate binds an action to its preconditions and intensity tier.
type Aggregate struct {
	Action        Kind              `json:"action" yaml:"action"`
	Intensity     int               `json:"intensity" yaml:"intensity"`
	Preconditions []actor.Condition `json:"preconditions" yaml:"preconditions"`

	future []actor.Condition
}

// NewAggregate builds an aggregate and precomputes its future-safe preconditions.
func NewAggregate(kind Kind, intensity int, preconditions ...actor.Condition) *Aggregate {
	return &Aggregate{
		Action:        kind,
		Intensity:     intensity,
		Preconditions: preconditions,
		future:        conditions.FutureSafe(preconditions),
	}
}

// PreconditionsHold checks every precondition against s.
func (a *Aggregate) PreconditionsHold(s *state.Snapshot, b actor.Binding) bool {
	return conditions.All(a.Preconditions, s, b)
}

// FuturePreconditions returns the preconditions that do not depend on where
// the player is standing.
func (a *Aggregate) FuturePreconditions() []actor.Condition {
	if a.future == nil {
		a.future = conditions.FutureSafe(a.Preconditions)
	}
	return a.future
}

// FuturePreconditionsHold is PreconditionsHold for lookahead.
func (a *Aggregate) FuturePreconditionsHold(s *state.Snapshot, b actor.Binding) bool {
	return conditions.All(a.FuturePreconditions(), s, b)
}

// Evaluate applies the action after checking its preconditions. Calling it
// when they do not hold is a contract violation and returns an error.
func (a *Aggregate) Evaluate(s *state.Snapshot, b actor.Binding, sp Spawner) (*state.Snapshot, error) {
	if !a.PreconditionsHold(s, b) {
		return nil, fmt.Errorf("%s by %q: %w", a.Action, b.Instigator, ErrPreconditionsNotMet)
	}
	return Apply(a.Action, s, b, sp), nil
}

// TryApply applies the action only when its preconditions hold.
func (a *Aggregate) TryApply(s *state.Snapshot, b actor.Binding, sp Spawner) (*state.Snapshot, bool) {
	if !a.PreconditionsHold(s, b) {
		return nil, false
	}
	return Apply(a.Action, s, b, sp), true
}

// Apply applies the action without checking preconditions.
func (a *Aggregate) Apply(s *state.Snapshot, b actor.Binding, sp Spawner) *state.Snapshot {
	return Apply(a.Action, s, b, sp)
}
