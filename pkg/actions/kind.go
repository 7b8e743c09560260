// Package actions holds the dramatic actions characters and the drama manager
// can take, their preconditions, and the registry that pools them by tier.
package actions

import (
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// Kind names one action in the library.
type Kind string

const (
	// Self actions.
	Wait             Kind = "wait"
	HideSelf         Kind = "hide_self"
	FreeSelfWithItem Kind = "free_self_with_item"
	FindItem         Kind = "find_item"

	// Two-party actions.
	GiveItem  Kind = "give_item"
	Insult    Kind = "insult"
	StealItem Kind = "steal_item"
	LockUp    Kind = "lock_up"

	// Introductions.
	IntroduceSelf         Kind = "introduce_self"
	IntroduceSelfDistance Kind = "introduce_self_distance"
	IntroduceMurderQuest  Kind = "introduce_murder_quest"

	// Tell the player something.
	TellWantToKill       Kind = "tell_want_to_kill"
	TellPlayerToComeBack Kind = "tell_player_to_come_back"
	TellPlayerToKill     Kind = "tell_player_to_kill"

	// Kills.
	CloseKill    Kind = "close_kill"
	DistanceKill Kind = "distance_kill"

	// Drama manager actions.
	LockUpAll       Kind = "lock_up_all"
	ReleaseAll      Kind = "release_all"
	BlowUpThePrison Kind = "blow_up_the_prison"
)

// Kinds lists every action in the library.
var Kinds = []Kind{
	Wait, HideSelf, FreeSelfWithItem, FindItem,
	GiveItem, Insult, StealItem, LockUp,
	IntroduceSelf, IntroduceSelfDistance, IntroduceMurderQuest,
	TellWantToKill, TellPlayerToComeBack, TellPlayerToKill,
	CloseKill, DistanceKill,
	LockUpAll, ReleaseAll, BlowUpThePrison,
}

// Spawner is the capability quest actions use to create items.
// ItemLocation picks a spot for an item owned by owner; ok is false when
// the placement search gave up and pos is best effort.
type Spawner interface {
	ItemLocation(s *state.Snapshot, owner string) (pos actor.Position, ok bool)
	Intn(n int) int
}
