package chat

import (
	"slices"
)

// Line is a single line of dialogue spoken by a character.
type Line struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// IsFrom reports whether the line was spoken by the named speaker.
func (l Line) IsFrom(speaker string) bool {
	return l.Speaker == speaker
}

// Conversations maps a conversation key (the NPC's name) to its ordered,
// append-only history. Player lines addressed to an NPC live in that NPC's
// conversation.
type Conversations map[string][]Line

// Append adds a line to the end of the named conversation, creating it if needed.
func (c Conversations) Append(key string, line Line) {
	c[key] = append(c[key], line)
}

// Len returns the number of lines in the named conversation.
// Presentation layers compare it against the count they have already shown.
func (c Conversations) Len(key string) int {
	return len(c[key])
}

// Lines returns a copy of the named conversation.
func (c Conversations) Lines(key string) []Line {
	return slices.Clone(c[key])
}

// Since returns the lines after the first n, i.e. the delta a caller that has
// already displayed n lines still needs to show. Out of range n yields nil.
func (c Conversations) Since(key string, n int) []Line {
	lines := c[key]
	if n < 0 || n >= len(lines) {
		return nil
	}
	return slices.Clone(lines[n:])
}

// Last returns the most recent line of the named conversation.
func (c Conversations) Last(key string) (Line, bool) {
	lines := c[key]
	if len(lines) == 0 {
		return Line{}, false
	}
	return lines[len(lines)-1], true
}

// Keys returns the conversation keys in sorted order.
func (c Conversations) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone deep-copies every conversation so appends on the copy never reach
// the original's backing arrays.
func (c Conversations) Clone() Conversations {
	out := make(Conversations, len(c))
	for k, lines := range c {
		out[k] = slices.Clone(lines)
	}
	return out
}
