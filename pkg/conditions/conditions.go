// Package conditions evaluates goal and precondition predicates against a
// snapshot. Every predicate is pure.
package conditions

import (
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// Holds evaluates c against s with the entities named in b.
// A predicate whose required entities cannot be resolved is false,
// negated or not.
func Holds(c actor.Condition, s *state.Snapshot, b actor.Binding) bool {
	if s == nil {
		return false
	}
	v, ok := eval(c, s, b)
	if !ok {
		return false
	}
	if c.Negate {
		return !v
	}
	return v
}

// All reports whether every condition holds. An empty list holds.
func All(conds []actor.Condition, s *state.Snapshot, b actor.Binding) bool {
	for _, c := range conds {
		if !Holds(c, s, b) {
			return false
		}
	}
	return true
}

// FutureSafe drops the conditions that read the player's position.
func FutureSafe(conds []actor.Condition) []actor.Condition {
	out := make([]actor.Condition, 0, len(conds))
	for _, c := range conds {
		if !c.Kind.LocationDependent() {
			out = append(out, c)
		}
	}
	return out
}

// GoalSatisfied reports whether g holds in s.
func GoalSatisfied(g actor.Goal, s *state.Snapshot) bool {
	return Holds(g.Condition, s, g.Binding)
}

// Score counts the satisfied goals. Priority is not weighted.
func Score(goals []actor.Goal, s *state.Snapshot) int {
	n := 0
	for _, g := range goals {
		if GoalSatisfied(g, s) {
			n++
		}
	}
	return n
}

// eval returns the raw predicate value and whether its arguments resolved.
func eval(c actor.Condition, s *state.Snapshot, b actor.Binding) (bool, bool) {
	inst := s.Character(b.Instigator)
	recv := s.Character(b.Receiver)
	item, holder := s.FindItem(b.Item)
	player := s.Player

	switch c.Kind {
	// Liveness and mobility only need the entity they test.
	case actor.CondInstigatorAlive:
		if inst == nil {
			return false, false
		}
		return inst.IsAlive(), true
	case actor.CondReceiverAlive:
		if recv == nil {
			return false, false
		}
		return recv.IsAlive(), true
	case actor.CondInstigatorMobile:
		if inst == nil {
			return false, false
		}
		return inst.IsMobile(), true
	case actor.CondReceiverMobile:
		if recv == nil {
			return false, false
		}
		return recv.IsMobile(), true
	case actor.CondReceiverIsOther:
		if inst == nil || recv == nil {
			return false, false
		}
		return inst.Name != recv.Name, true

	case actor.CondInstigatorTrustsReceiver:
		if inst == nil || recv == nil {
			return false, false
		}
		r, _ := inst.Relationship(recv.Name)
		return r.Trust > 0, true
	case actor.CondInstigatorLikesReceiver:
		if inst == nil || recv == nil {
			return false, false
		}
		r, _ := inst.Relationship(recv.Name)
		return r.Like > 0, true
	case actor.CondReceiverRegardAboveFloor:
		// receiver's feelings toward the instigator can still be lowered
		if inst == nil || recv == nil {
			return false, false
		}
		r, _ := recv.Relationship(inst.Name)
		return r.Trust > actor.RelationshipMin || r.Like > actor.RelationshipMin, true

	case actor.CondInstigatorHasItem:
		if inst == nil || item == nil {
			return false, false
		}
		return inst.HasItem(b.Item), true
	case actor.CondReceiverHasItem:
		if recv == nil || item == nil {
			return false, false
		}
		return recv.HasItem(b.Item), true
	case actor.CondPlayerHasItem:
		if player == nil || item == nil {
			return false, false
		}
		return player.HasItem(b.Item), true
	case actor.CondItemInWorld:
		if item == nil {
			return false, false
		}
		return holder == nil, true

	case actor.CondItemLethal:
		return itemStatus(item, actor.StatusLethal)
	case actor.CondItemLiberating:
		return itemStatus(item, actor.StatusLiberating)
	case actor.CondItemDistance:
		return itemStatus(item, actor.StatusDistance)
	case actor.CondItemAlive:
		if item == nil {
			return false, false
		}
		return item.Alive, true
	case actor.CondItemOwnedByInstigator:
		if item == nil || inst == nil {
			return false, false
		}
		return item.Owner == inst.Name, true

	case actor.CondInstigatorHidden:
		if inst == nil {
			return false, false
		}
		return inst.Hidden, true
	case actor.CondReceiverHidden:
		if recv == nil {
			return false, false
		}
		return recv.Hidden, true
	case actor.CondItemHidden:
		if item == nil {
			return false, false
		}
		return item.Hidden, true

	case actor.CondPlayerNearInstigator:
		if player == nil || inst == nil {
			return false, false
		}
		return actor.Within(player.Position, inst.Position, c.Radius), true
	case actor.CondPlayerNearReceiver:
		if player == nil || recv == nil {
			return false, false
		}
		return actor.Within(player.Position, recv.Position, c.Radius), true
	case actor.CondPlayerNearItem:
		if player == nil || item == nil {
			return false, false
		}
		pos := item.Position
		if holder != nil {
			pos = holder.Position
		}
		return actor.Within(player.Position, pos, c.Radius), true

	case actor.CondPlayerKnowsInstigator:
		if player == nil || inst == nil {
			return false, false
		}
		return player.Beliefs.Knows(inst.Name), true
	case actor.CondPlayerKnowsInstigatorWantsToKillReceiver:
		if player == nil || inst == nil || recv == nil {
			return false, false
		}
		return player.Beliefs.Has(actor.Belief{Subject: inst.Name, Predicate: actor.PredicateWantsToKill, Object: recv.Name}), true
	case actor.CondPlayerKnowsReceiverWantsToKillInstigator:
		if player == nil || inst == nil || recv == nil {
			return false, false
		}
		return player.Beliefs.Has(actor.Belief{Subject: recv.Name, Predicate: actor.PredicateWantsToKill, Object: inst.Name}), true
	case actor.CondPlayerKnowsToKillReceiver:
		if player == nil || recv == nil {
			return false, false
		}
		return player.Beliefs.Has(actor.Belief{Subject: player.Name, Predicate: actor.PredicateMustKill, Object: recv.Name}), true
	case actor.CondPlayerKnowsInstigatorWantsItem:
		if player == nil || inst == nil || item == nil {
			return false, false
		}
		return player.Beliefs.Has(actor.Belief{Subject: inst.Name, Predicate: actor.PredicateWantsItem, Object: b.Item}), true

	case actor.CondAnyCharacterAlive:
		return anyCharacter(s, func(c *actor.Character) bool { return c.IsAlive() }), true
	case actor.CondAnyCharacterMobile:
		return anyCharacter(s, func(c *actor.Character) bool { return c.IsAlive() && c.IsMobile() }), true
	case actor.CondAnyCharacterImmobile:
		return anyCharacter(s, func(c *actor.Character) bool { return c.IsAlive() && !c.IsMobile() }), true
	}

	return false, false
}

func itemStatus(it *actor.Item, st actor.Status) (bool, bool) {
	if it == nil {
		return false, false
	}
	return it.HasStatus(st), true
}

func anyCharacter(s *state.Snapshot, pred func(*actor.Character) bool) bool {
	for _, c := range s.Characters {
		if pred(c) {
			return true
		}
	}
	return false
}
