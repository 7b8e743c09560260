package actor

// Binding names the entities a condition or action is evaluated against.
// An empty name means the role is absent.
type Binding struct {
	Instigator string `json:"instigator,omitempty"`
	Receiver   string `json:"receiver,omitempty"`
	Item       string `json:"item,omitempty"`
}

// ConditionKind enumerates every predicate the condition library knows.
type ConditionKind string

const (
	// Liveness and mobility.
	CondInstigatorAlive  ConditionKind = "instigator_alive"
	CondReceiverAlive    ConditionKind = "receiver_alive"
	CondInstigatorMobile ConditionKind = "instigator_mobile"
	CondReceiverMobile   ConditionKind = "receiver_mobile"
	CondReceiverIsOther  ConditionKind = "receiver_is_other"

	// Relationships.
	CondInstigatorTrustsReceiver ConditionKind = "instigator_trusts_receiver"
	CondInstigatorLikesReceiver  ConditionKind = "instigator_likes_receiver"
	CondReceiverRegardAboveFloor ConditionKind = "receiver_regard_above_floor"

	// Inventory.
	CondInstigatorHasItem ConditionKind = "instigator_has_item"
	CondReceiverHasItem   ConditionKind = "receiver_has_item"
	CondPlayerHasItem     ConditionKind = "player_has_item"
	CondItemInWorld       ConditionKind = "item_in_world"

	// Item tags.
	CondItemLethal            ConditionKind = "item_lethal"
	CondItemLiberating        ConditionKind = "item_liberating"
	CondItemDistance          ConditionKind = "item_distance"
	CondItemAlive             ConditionKind = "item_alive"
	CondItemOwnedByInstigator ConditionKind = "item_owned_by_instigator"

	// Visibility.
	CondInstigatorHidden ConditionKind = "instigator_hidden"
	CondReceiverHidden   ConditionKind = "receiver_hidden"
	CondItemHidden       ConditionKind = "item_hidden"

	// Proximity to the player. These carry a Radius.
	CondPlayerNearInstigator ConditionKind = "player_near_instigator"
	CondPlayerNearReceiver   ConditionKind = "player_near_receiver"
	CondPlayerNearItem       ConditionKind = "player_near_item"

	// Player knowledge.
	CondPlayerKnowsInstigator                    ConditionKind = "player_knows_instigator"
	CondPlayerKnowsInstigatorWantsToKillReceiver ConditionKind = "player_knows_instigator_wants_to_kill_receiver"
	CondPlayerKnowsReceiverWantsToKillInstigator ConditionKind = "player_knows_receiver_wants_to_kill_instigator"
	CondPlayerKnowsToKillReceiver                ConditionKind = "player_knows_to_kill_receiver"
	CondPlayerKnowsInstigatorWantsItem           ConditionKind = "player_knows_instigator_wants_item"

	// World level, used by drama manager actions.
	CondAnyCharacterAlive    ConditionKind = "any_character_alive"
	CondAnyCharacterMobile   ConditionKind = "any_character_mobile"
	CondAnyCharacterImmobile ConditionKind = "any_character_immobile"
)

// LocationDependent reports whether the predicate reads the player's current
// position, which cannot be known when planning ahead.
func (k ConditionKind) LocationDependent() bool {
	switch k {
	case CondPlayerNearInstigator, CondPlayerNearReceiver, CondPlayerNearItem:
		return true
	}
	return false
}

// Condition is one predicate variant with its parameters.
type Condition struct {
	Kind   ConditionKind `json:"kind"`
	Negate bool          `json:"negate,omitempty"`
	Radius float64       `json:"radius,omitempty"` // proximity kinds only
}

// Is returns the plain condition for kind.
func Is(kind ConditionKind) Condition { return Condition{Kind: kind} }

// Not returns the negated condition for kind.
func Not(kind ConditionKind) Condition { return Condition{Kind: kind, Negate: true} }

// Near returns a proximity condition for kind with the given radius.
func Near(kind ConditionKind, radius float64) Condition {
	return Condition{Kind: kind, Radius: radius}
}

// Goal is something a character wants to be true.
// Priority is carried for authoring but does not weight scoring.
type Goal struct {
	Condition Condition `json:"condition"`
	Binding   Binding   `json:"binding"`
	Priority  int       `json:"priority,omitempty"`
}
