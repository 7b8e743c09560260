package actions

import (
	"fmt"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

// flavor holds the prisoner and guard renditions of one beat.
type flavor struct {
	prisoner []string
	guard    []string
}

// lines picks the rendition for speaker. Speakers of neither archetype get none.
func (f flavor) lines(speaker string) []string {
	switch {
	case actor.IsPrisoner(speaker):
		return f.prisoner
	case actor.IsGuard(speaker):
		return f.guard
	}
	return nil
}

var (
	introduceSelfLines = flavor{
		prisoner: []string{"Who the hell are you? You aren't a guard, or a prisoner. What's up with that?"},
		guard:    []string{"Entity, what's your designation? You are not a guard or prisoner. But perhaps you can be useful."},
	}
	introduceSelfDistanceLines = flavor{
		prisoner: []string{"Now what have we got here? Someone who can move through the prison?", "Why don't you come see me."},
		guard:    []string{"Stop what you're doing immediately.", "Report to me, Entity."},
	}
	murderQuestLines = flavor{
		prisoner: []string{"Hey buddy, not sure who you are, but I need this thing.", "Gonna use it to take down a jerk. Sounds good, right?"},
		guard:    []string{"Entity, I require your assistance.", "One of these monsters wishes me ill. Fetch this device to stop them."},
	}
	wantToKillLines = flavor{
		prisoner: []string{"Hey so I need you to get this thing for me. In order to take out a jerk."},
		guard:    []string{"One of these monsters wishes me ill. Fetch me this device to stop them."},
	}
	comeBackLines = flavor{
		prisoner: []string{"You got it! Head on back."},
		guard:    []string{"Readings indicate you have the item, come on back."},
	}
	toKillLines = flavor{
		prisoner: []string{"Hey so you'll actually need to take this to the jerk to kill him."},
		guard:    []string{"You'll need to take this item to the other to neutralize the threat."},
	}
	killLines = flavor{
		prisoner: []string{"Haha, that'll show him."},
		guard:    []string{"Threat neutralized, well done."},
	}
)

const (
	waitLine    = "I guess I can do nothing but wait."
	hideLine    = "No one will find me now!"
	lockUpLine  = "Stay locked up in there!"
	giveLine    = "Here you go."
	retortLine  = "What? You try saying that again!"
	lockdownMsg = "Lockdown. All inmates return to your cells."
	releaseMsg  = "Cell doors are opening. The power is failing."
	blowUpMsg   = "The prison blew up. Whoops."
)

func insultLine(target string) string {
	return fmt.Sprintf("You know %s, you're a real piece of work.", target)
}
func thanksLine(item string) string { return fmt.Sprintf("Hey thanks for the %s.", item) }
func freedLine(item string) string  { return fmt.Sprintf("I'm free, no thanks to this %s!", item) }
func foundLine(item string) string  { return fmt.Sprintf("Well look here! I found a %s.", item) }
func stoleLine(item string) string  { return fmt.Sprintf("Success! This %s is mine!", item) }
func robbedLine(item string) string { return fmt.Sprintf("Wait...where did the %s go?", item) }

// say appends lines spoken by speaker to the speaker's own conversation.
func say(s *state.Snapshot, speaker string, lines ...string) {
	for _, l := range lines {
		s.AddLine(speaker, speaker, l)
	}
}

// questItemName names an item after its owner and archetype.
func questItemName(owner string) string {
	switch {
	case actor.IsPrisoner(owner):
		return owner + "'s shiv"
	case actor.IsGuard(owner):
		return owner + "'s device"
	}
	return owner + "'s item"
}
