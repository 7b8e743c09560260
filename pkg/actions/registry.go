package actions

import "github.com/jwebster45206/drama-engine/pkg/actor"

// Radii are the two proximity thresholds preconditions are written against.
// Reveal must be larger than Interact.
type Radii struct {
	Reveal   float64
	Interact float64
}

// Registry holds the fixed character and drama manager action pools.
type Registry struct {
	character []*Aggregate
	dm        []*Aggregate
}

// NewRegistry builds both pools. Character actions are tagged with the tier
// that unlocks them; drama manager actions with the tier they belong to.
func NewRegistry(r Radii) *Registry {
	var (
		alive   = actor.Is(actor.CondInstigatorAlive)
		mobile  = actor.Is(actor.CondInstigatorMobile)
		hidden  = actor.Is(actor.CondInstigatorHidden)
		visible = actor.Not(actor.CondInstigatorHidden)
		other   = actor.Is(actor.CondReceiverIsOther)
		recvOK  = actor.Is(actor.CondReceiverAlive)
		hasItem = actor.Is(actor.CondInstigatorHasItem)
		owned   = actor.Is(actor.CondItemOwnedByInstigator)
		handed  = actor.Is(actor.CondPlayerHasItem)
		threat  = actor.Is(actor.CondPlayerKnowsReceiverWantsToKillInstigator)
		motive  = actor.Is(actor.CondPlayerKnowsInstigatorWantsToKillReceiver)
	)

	reg := &Registry{}

	reg.character = []*Aggregate{
		// tier 0
		NewAggregate(IntroduceSelf, 0, alive, hidden,
			actor.Near(actor.CondPlayerNearInstigator, r.Reveal)),
		NewAggregate(IntroduceMurderQuest, 0, alive, hidden,
			actor.Near(actor.CondPlayerNearInstigator, r.Reveal),
			other, recvOK),
		NewAggregate(TellPlayerToComeBack, 0, alive, visible, handed, owned,
			actor.Not(actor.CondPlayerKnowsInstigatorWantsItem)),
		NewAggregate(Wait, 0, alive, actor.Not(actor.CondInstigatorMobile), visible),
		NewAggregate(HideSelf, 0, alive, mobile, visible, other, recvOK, threat),

		// tier 1
		NewAggregate(IntroduceSelfDistance, 1, alive, hidden, other, threat),
		NewAggregate(TellWantToKill, 1, alive, visible,
			actor.Is(actor.CondPlayerKnowsInstigator),
			other, recvOK,
			actor.Not(actor.CondPlayerKnowsInstigatorWantsToKillReceiver),
			actor.Near(actor.CondPlayerNearInstigator, r.Interact)),
		NewAggregate(Insult, 1, alive, other, recvOK, visible,
			actor.Not(actor.CondReceiverHidden),
			actor.Is(actor.CondReceiverRegardAboveFloor),
			motive,
			actor.Near(actor.CondPlayerNearInstigator, r.Interact)),
		NewAggregate(GiveItem, 1, alive, other, recvOK, hasItem,
			actor.Is(actor.CondInstigatorLikesReceiver),
			actor.Is(actor.CondInstigatorTrustsReceiver)),

		// tier 2
		NewAggregate(TellPlayerToKill, 2, alive, visible, other, recvOK, handed, owned,
			actor.Is(actor.CondItemDistance),
			motive,
			actor.Not(actor.CondPlayerKnowsToKillReceiver)),
		NewAggregate(CloseKill, 2, alive, other, recvOK,
			actor.Is(actor.CondItemLethal),
			actor.Is(actor.CondItemAlive),
			actor.Not(actor.CondItemDistance),
			owned, handed,
			actor.Near(actor.CondPlayerNearInstigator, r.Interact)),
		NewAggregate(DistanceKill, 2, alive, other, recvOK,
			actor.Is(actor.CondItemLethal),
			actor.Is(actor.CondItemAlive),
			actor.Is(actor.CondItemDistance),
			owned, handed,
			actor.Is(actor.CondPlayerKnowsToKillReceiver),
			actor.Near(actor.CondPlayerNearReceiver, r.Interact)),

		// tier 3
		NewAggregate(StealItem, 3, alive, mobile, other, recvOK,
			actor.Is(actor.CondReceiverHasItem),
			actor.Not(actor.CondInstigatorTrustsReceiver),
			visible),
		NewAggregate(FreeSelfWithItem, 3, alive, actor.Not(actor.CondInstigatorMobile), hasItem,
			actor.Is(actor.CondItemLiberating)),
		NewAggregate(LockUp, 3, alive, mobile, visible, other, recvOK,
			actor.Is(actor.CondReceiverMobile),
			actor.Not(actor.CondReceiverHidden),
			threat),
		NewAggregate(FindItem, 3, alive, mobile, visible,
			actor.Is(actor.CondItemInWorld),
			actor.Is(actor.CondItemAlive),
			owned),
	}

	reg.dm = []*Aggregate{
		NewAggregate(LockUpAll, 2, actor.Is(actor.CondAnyCharacterMobile)),
		NewAggregate(ReleaseAll, 4, actor.Is(actor.CondAnyCharacterImmobile)),
		NewAggregate(BlowUpThePrison, 6, actor.Is(actor.CondAnyCharacterAlive)),
	}

	return reg
}

// CharacterActions returns every character action regardless of tier.
func (r *Registry) CharacterActions() []*Aggregate {
	out := make([]*Aggregate, len(r.character))
	copy(out, r.character)
	return out
}

// UnlockedAt returns the character actions unlocked exactly at tier.
func (r *Registry) UnlockedAt(tier int) []*Aggregate {
	return filterTier(r.character, tier)
}

// DMActions returns the drama manager actions belonging to tier.
func (r *Registry) DMActions(tier int) []*Aggregate {
	return filterTier(r.dm, tier)
}

// Pool builds the character action pool for tier: everything unlocked at
// tier 0, then each later unlock repeated once per tier index up to tier.
func (r *Registry) Pool(tier int) []*Aggregate {
	pool := r.UnlockedAt(0)
	for t := 1; t <= tier; t++ {
		unlocked := r.UnlockedAt(t)
		for range t {
			pool = append(pool, unlocked...)
		}
	}
	return pool
}

func filterTier(in []*Aggregate, tier int) []*Aggregate {
	var out []*Aggregate
	for _, a := range in {
		if a.Intensity == tier {
			out = append(out, a)
		}
	}
	return out
}
