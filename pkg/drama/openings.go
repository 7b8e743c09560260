package drama

import (
	"fmt"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// Opening is one of the fixed starting configurations.
type Opening string

const (
	// OpeningCellblock hides the prisoner right beside the player.
	OpeningCellblock Opening = "cellblock"
	// OpeningPatrol hides the guard right beside the player.
	OpeningPatrol Opening = "patrol"
	// OpeningLightsOut hides both somewhere in the arena; the prisoner is
	// locked up and the guard carries the key.
	OpeningLightsOut Opening = "lights_out"
)

var Openings = []Opening{OpeningCellblock, OpeningPatrol, OpeningLightsOut}

// besideOffset is how far from the player a "beside" character starts.
const besideOffset = 30

// Initialize starts a session with a randomly chosen opening.
func (m *Manager) Initialize(width, height float64) *state.Snapshot {
	o := Openings[m.rng.IntN(len(Openings))]
	snap, _ := m.InitializeWith(o, width, height)
	return snap
}

// InitializeWith starts a session with the named opening.
func (m *Manager) InitializeWith(o Opening, width, height float64) (*state.Snapshot, error) {
	center := actor.Position{X: width / 2, Y: height / 2}
	snap := state.New(center)
	m.Start(snap, width, height)

	prisoner := actor.NewCharacter(actor.RandomName(actor.PrisonerTitle, m.rng), actor.Position{})
	guard := actor.NewCharacter(actor.RandomName(actor.GuardTitle, m.rng), actor.Position{})
	prisoner.Hidden = true
	guard.Hidden = true

	beside := center.Add(actor.Position{X: besideOffset})
	taken := []actor.Position{center}
	place := func(c *actor.Character) {
		r := m.placer.PlaceCharacter(taken, 0)
		c.Position = r.Position
		taken = append(taken, r.Position)
	}

	switch o {
	case OpeningCellblock:
		prisoner.Position = beside
		taken = append(taken, beside)
		place(guard)
	case OpeningPatrol:
		guard.Position = beside
		taken = append(taken, beside)
		place(prisoner)
	case OpeningLightsOut:
		place(prisoner)
		place(guard)
		_ = prisoner.RemoveStatus(actor.StatusMobile)
		key, err := actor.NewItem(guard.Name+"'s key", guard.Position, actor.StatusLiberating)
		if err != nil {
			return nil, err
		}
		key.Hidden = true
		key.Owner = guard.Name
		guard.Give(key)
	default:
		return nil, fmt.Errorf("unknown opening %q", o)
	}

	prisoner.SetRelationship(guard.Name, actor.Relationship{Trust: -1, Like: -2})
	guard.SetRelationship(prisoner.Name, actor.Relationship{Trust: -1, Like: -1})
	prisoner.Goals = rivalGoals(prisoner.Name, guard.Name)
	guard.Goals = append(rivalGoals(guard.Name, prisoner.Name), actor.Goal{
		Condition: actor.Not(actor.CondReceiverMobile),
		Binding:   actor.Binding{Instigator: guard.Name, Receiver: prisoner.Name},
		Priority:  1,
	})

	if err := snap.AddCharacter(prisoner); err != nil {
		return nil, err
	}
	if err := snap.AddCharacter(guard); err != nil {
		return nil, err
	}

	m.logger.Info("opening chosen",
		"opening", o,
		"prisoner", prisoner.Name,
		"guard", guard.Name)
	return snap, nil
}

// rivalGoals: be known to the player, have the player know about the grudge,
// and see the rival dead.
func rivalGoals(self, rival string) []actor.Goal {
	return []actor.Goal{
		{Condition: actor.Is(actor.CondPlayerKnowsInstigator), Binding: actor.Binding{Instigator: self}, Priority: 1},
		{Condition: actor.Is(actor.CondPlayerKnowsInstigatorWantsToKillReceiver), Binding: actor.Binding{Instigator: self, Receiver: rival}, Priority: 2},
		{Condition: actor.Not(actor.CondReceiverAlive), Binding: actor.Binding{Instigator: self, Receiver: rival}, Priority: 3},
	}
}
