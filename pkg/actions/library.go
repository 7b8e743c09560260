package actions

import (
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// Apply clones s and applies one action to the clone. The input snapshot is
// never touched. When the bound entities are missing the clone comes back
// unchanged; that is the only failure signal.
func Apply(kind Kind, s *state.Snapshot, b actor.Binding, sp Spawner) *state.Snapshot {
	if s == nil {
		return nil
	}
	next := s.Clone()
	r := resolve(next, b)

	switch kind {
	case Wait:
		wait(next, r)
	case HideSelf:
		hideSelf(next, r)
	case FreeSelfWithItem:
		freeSelf(next, r)
	case FindItem:
		findItem(next, r)
	case GiveItem:
		giveItem(next, r)
	case Insult:
		insult(next, r)
	case StealItem:
		stealItem(next, r)
	case LockUp:
		lockUp(next, r)
	case IntroduceSelf:
		introduce(next, r, introduceSelfLines)
	case IntroduceSelfDistance:
		introduce(next, r, introduceSelfDistanceLines)
	case IntroduceMurderQuest:
		introduceMurderQuest(next, r, sp)
	case TellWantToKill:
		tellWantToKill(next, r, sp)
	case TellPlayerToComeBack:
		tellComeBack(next, r)
	case TellPlayerToKill:
		tellToKill(next, r)
	case CloseKill:
		closeKill(next, r)
	case DistanceKill:
		distanceKill(next, r)
	case LockUpAll:
		setMobileAll(next, false, lockdownMsg)
	case ReleaseAll:
		setMobileAll(next, true, releaseMsg)
	case BlowUpThePrison:
		blowUp(next)
	}
	return next
}

// roles are the binding resolved inside the clone being mutated.
type roles struct {
	inst   *actor.Character
	recv   *actor.Character
	item   *actor.Item
	holder *actor.Character // nil when item lies in the world
}

func resolve(s *state.Snapshot, b actor.Binding) roles {
	r := roles{
		inst: s.Character(b.Instigator),
		recv: s.Character(b.Receiver),
	}
	r.item, r.holder = s.FindItem(b.Item)
	return r
}

func wait(s *state.Snapshot, r roles) {
	if r.inst == nil {
		return
	}
	// Waiting twice in a row says nothing new.
	if last, ok := s.Conversations.Last(r.inst.Name); ok && last.IsFrom(r.inst.Name) && last.Text == waitLine {
		return
	}
	say(s, r.inst.Name, waitLine)
}

func hideSelf(s *state.Snapshot, r roles) {
	if r.inst == nil {
		return
	}
	r.inst.Hidden = true
	say(s, r.inst.Name, hideLine)
}

func freeSelf(s *state.Snapshot, r roles) {
	if r.inst == nil || r.item == nil || !r.inst.HasItem(r.item.Name) {
		return
	}
	r.inst.Take(r.item.Name)
	_ = r.inst.AddStatus(actor.StatusMobile)
	say(s, r.inst.Name, freedLine(r.item.Name))
}

func findItem(s *state.Snapshot, r roles) {
	if r.inst == nil || r.item == nil || r.holder != nil {
		return
	}
	s.RemoveItem(r.item.Name)
	r.inst.Give(r.item)
	say(s, r.inst.Name, foundLine(r.item.Name))
}

func giveItem(s *state.Snapshot, r roles) {
	if r.inst == nil || r.recv == nil || r.item == nil || !r.inst.HasItem(r.item.Name) {
		return
	}
	r.recv.Give(r.inst.Take(r.item.Name))
	say(s, r.inst.Name, giveLine)
	say(s, r.recv.Name, thanksLine(r.item.Name))
}

func insult(s *state.Snapshot, r roles) {
	if r.inst == nil || r.recv == nil {
		return
	}
	say(s, r.inst.Name, insultLine(r.recv.Name))
	say(s, r.recv.Name, retortLine)
	rel, _ := r.recv.Relationship(r.inst.Name)
	rel.Trust--
	rel.Like--
	r.recv.SetRelationship(r.inst.Name, rel)
}

func stealItem(s *state.Snapshot, r roles) {
	if r.inst == nil || r.recv == nil || r.item == nil || !r.recv.HasItem(r.item.Name) {
		return
	}
	r.inst.Give(r.recv.Take(r.item.Name))
	say(s, r.inst.Name, stoleLine(r.item.Name))
	say(s, r.recv.Name, robbedLine(r.item.Name))
}

func lockUp(s *state.Snapshot, r roles) {
	if r.inst == nil || r.recv == nil {
		return
	}
	_ = r.recv.RemoveStatus(actor.StatusMobile)
	say(s, r.inst.Name, lockUpLine)
}

func introduce(s *state.Snapshot, r roles, f flavor) {
	if r.inst == nil {
		return
	}
	r.inst.Hidden = false
	learn(s, actor.Belief{Subject: r.inst.Name, Predicate: actor.PredicateIntroduced})
	say(s, r.inst.Name, f.lines(r.inst.Name)...)
}

func introduceMurderQuest(s *state.Snapshot, r roles, sp Spawner) {
	if r.inst == nil || r.recv == nil {
		return
	}
	r.inst.Hidden = false
	spawnQuestItem(s, r.inst, sp)
	learn(s, actor.Belief{Subject: r.inst.Name, Predicate: actor.PredicateWantsToKill, Object: r.recv.Name})
	learn(s, actor.Belief{Subject: r.inst.Name, Predicate: actor.PredicateIntroduced})
	say(s, r.inst.Name, murderQuestLines.lines(r.inst.Name)...)
}

func tellWantToKill(s *state.Snapshot, r roles, sp Spawner) {
	if r.inst == nil || r.recv == nil {
		return
	}
	learn(s, actor.Belief{Subject: r.inst.Name, Predicate: actor.PredicateWantsToKill, Object: r.recv.Name})
	spawnQuestItem(s, r.inst, sp)
	say(s, r.inst.Name, wantToKillLines.lines(r.inst.Name)...)
}

// spawnQuestItem drops a lethal item owned by owner into the world.
// Half of them also work from a distance.
func spawnQuestItem(s *state.Snapshot, owner *actor.Character, sp Spawner) *actor.Item {
	pos := owner.Position
	statuses := []actor.Status{actor.StatusLethal}
	if sp != nil {
		pos, _ = sp.ItemLocation(s, owner.Name)
		if sp.Intn(2) == 0 {
			statuses = append(statuses, actor.StatusDistance)
		}
	}
	it, err := actor.NewItem(s.UniqueItemName(questItemName(owner.Name)), pos, statuses...)
	if err != nil {
		return nil
	}
	it.Owner = owner.Name
	if err := s.AddItem(it); err != nil {
		return nil
	}
	return it
}

func tellComeBack(s *state.Snapshot, r roles) {
	if r.inst == nil || r.item == nil {
		return
	}
	learn(s, actor.Belief{Subject: r.inst.Name, Predicate: actor.PredicateWantsItem, Object: r.item.Name})
	say(s, r.inst.Name, comeBackLines.lines(r.inst.Name)...)
}

func tellToKill(s *state.Snapshot, r roles) {
	if r.inst == nil || r.recv == nil {
		return
	}
	learn(s, actor.Belief{Subject: actor.PlayerName, Predicate: actor.PredicateMustKill, Object: r.recv.Name})
	say(s, r.inst.Name, toKillLines.lines(r.inst.Name)...)
}

// closeKill: the player hands the lethal item to the instigator, who uses it up.
func closeKill(s *state.Snapshot, r roles) {
	if r.inst == nil || r.recv == nil || r.item == nil || r.holder == nil {
		return
	}
	if !r.item.HasStatus(actor.StatusLethal) {
		return
	}
	_ = r.recv.RemoveStatus(actor.StatusAlive)
	r.item.Alive = false
	if r.holder != nil && r.holder != r.inst {
		r.inst.Give(r.holder.Take(r.item.Name))
	}
	say(s, r.inst.Name, killLines.lines(r.inst.Name)...)
}

// distanceKill: the player delivers the item to the receiver; the body vanishes.
func distanceKill(s *state.Snapshot, r roles) {
	if r.inst == nil || r.recv == nil || r.item == nil || r.holder == nil {
		return
	}
	if !r.item.HasStatus(actor.StatusLethal) || !r.item.HasStatus(actor.StatusDistance) {
		return
	}
	_ = r.recv.RemoveStatus(actor.StatusAlive)
	r.recv.Hidden = true
	r.item.Alive = false
	say(s, r.inst.Name, killLines.lines(r.inst.Name)...)
}

func setMobileAll(s *state.Snapshot, mobile bool, msg string) {
	for _, c := range s.Characters {
		if !c.IsAlive() {
			continue
		}
		if mobile {
			_ = c.AddStatus(actor.StatusMobile)
		} else {
			_ = c.RemoveStatus(actor.StatusMobile)
		}
	}
	say(s, actor.WorldSpeaker, msg)
}

func blowUp(s *state.Snapshot) {
	say(s, actor.WorldSpeaker, blowUpMsg)
	for _, c := range s.Characters {
		_ = c.RemoveStatus(actor.StatusAlive)
		_ = c.RemoveStatus(actor.StatusMobile)
	}
}

// learn records a belief on the player.
func learn(s *state.Snapshot, b actor.Belief) {
	if s.Player == nil {
		return
	}
	if s.Player.Beliefs == nil {
		s.Player.Beliefs = actor.BeliefSet{}
	}
	s.Player.Beliefs.Add(b)
}
