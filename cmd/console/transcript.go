package main

import (
	"strings"

	"github.com/jwebster45206/drama-engine/internal/narrate"
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
	"github.com/muesli/reflow/wordwrap"
)

type entryKind int

const (
	entryLine entryKind = iota
	entryEvent
	entryError
)

type entry struct {
	kind    entryKind
	speaker string
	text    string
}

type transcript []entry

// record appends everything that changed between prev and next.
func (t transcript) record(prev, next *state.Snapshot) transcript {
	if msg := narrate.Intensity(prev, next); msg != "" {
		t = append(t, entry{kind: entryEvent, text: msg})
	}
	d := state.Diff(prev, next)
	for _, e := range narrate.Events(d) {
		t = append(t, entry{kind: entryEvent, text: e})
	}
	for _, conv := range d.Speakers() {
		for _, l := range d.Lines[conv] {
			t = append(t, entry{kind: entryLine, speaker: l.Speaker, text: l.Text})
		}
	}
	for _, e := range narrate.Deaths(d) {
		t = append(t, entry{kind: entryEvent, text: e})
	}
	return t
}

// render formats the transcript for a panel of the given width.
func (t transcript) render(width int) string {
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	for _, e := range t {
		switch e.kind {
		case entryLine:
			style := speakerStyle
			if e.speaker == actor.PlayerName {
				style = userStyle
			}
			b.WriteString(style.Render(e.speaker+":") + " " + wordwrap.String(e.text, width-len(e.speaker)-2))
		case entryEvent:
			b.WriteString(narratorStyle.Render(wordwrap.String(e.text, width)))
		case entryError:
			b.WriteString(errorStyle.Render("Error: " + e.text))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// plain is the unstyled transcript, used for the clipboard.
func (t transcript) plain() string {
	var b strings.Builder
	for _, e := range t {
		switch e.kind {
		case entryLine:
			b.WriteString(e.speaker + ": " + e.text)
		case entryEvent:
			b.WriteString(e.text)
		default:
			continue
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// addressee works out who the player is talking to. "@Name text" picks a
// character by name; otherwise the nearest visible living character hears it.
func addressee(s *state.Snapshot, input string) (to, text string) {
	input = strings.TrimSpace(input)
	if rest, ok := strings.CutPrefix(input, "@"); ok {
		for _, c := range s.Characters {
			if strings.HasPrefix(rest, c.Name) && len(c.Name) > len(to) {
				to = c.Name
			}
		}
		if to != "" {
			return to, strings.TrimSpace(strings.TrimPrefix(rest, to))
		}
		name, text, _ := strings.Cut(rest, " ")
		return name, strings.TrimSpace(text)
	}

	best := -1.0
	for _, c := range s.Characters {
		if c.Hidden || !c.IsAlive() {
			continue
		}
		if d := actor.DistSq(s.Player.Position, c.Position); best < 0 || d < best {
			best, to = d, c.Name
		}
	}
	return to, input
}
