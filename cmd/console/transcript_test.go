package main

import (
	"strings"
	"testing"

	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) *state.Snapshot {
	t.Helper()
	s := state.New(actor.Position{X: 0, Y: 0})
	hidden := actor.NewCharacter("Prisoner Qawas", actor.Position{X: 5, Y: 0})
	hidden.Hidden = true
	require.NoError(t, s.AddCharacter(hidden))
	require.NoError(t, s.AddCharacter(actor.NewCharacter("Guard Lokpol", actor.Position{X: 50, Y: 0})))
	require.NoError(t, s.AddCharacter(actor.NewCharacter("Guard Lok", actor.Position{X: 90, Y: 0})))
	return s
}

func TestAddressee(t *testing.T) {
	s := testSnapshot(t)

	tests := []struct {
		name   string
		input  string
		wantTo string
		want   string
	}{
		{"nearest visible", "  hello there ", "Guard Lokpol", "hello there"},
		{"full name with space", "@Guard Lokpol drop it", "Guard Lokpol", "drop it"},
		{"shorter name", "@Guard Lok over here", "Guard Lok", "over here"},
		{"hidden by name", "@Prisoner Qawas psst", "Prisoner Qawas", "psst"},
		{"unknown name", "@Nobody hi", "Nobody", "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to, text := addressee(s, tt.input)
			assert.Equal(t, tt.wantTo, to)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestAddresseeNobodyVisible(t *testing.T) {
	s := state.New(actor.Position{})
	to, text := addressee(s, "anyone?")
	assert.Empty(t, to)
	assert.Equal(t, "anyone?", text)
}

func TestTranscriptRecord(t *testing.T) {
	prev := testSnapshot(t)
	next := prev.Clone()
	next.Character("Prisoner Qawas").Hidden = false
	next.AddLine("Prisoner Qawas", "Prisoner Qawas", "Over here.")
	_ = next.Character("Guard Lok").RemoveStatus(actor.StatusAlive)
	next.Intensity = 1

	var tr transcript
	tr = tr.record(prev, next)
	require.Len(t, tr, 4)
	assert.Equal(t, entryEvent, tr[0].kind)
	assert.Equal(t, entryLine, tr[2].kind)
	assert.Equal(t, "Guard Lok is dead.", tr[3].text)

	tr = append(tr, entry{kind: entryError, text: "unknown character"})
	plain := tr.plain()
	assert.Contains(t, plain, "Prisoner Qawas: Over here.\n")
	assert.NotContains(t, plain, "unknown character")
	assert.Equal(t, 4, strings.Count(plain, "\n"))
}
