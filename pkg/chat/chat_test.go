package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversations_AppendAndSince(t *testing.T) {
	c := Conversations{}
	c.Append("Guard Tyuzas", Line{Speaker: "Guard Tyuzas", Text: "Report to me, Entity."})
	c.Append("Guard Tyuzas", Line{Speaker: "Player", Text: "Who are you?"})
	c.Append("Prisoner Qawer", Line{Speaker: "Prisoner Qawer", Text: "Hey buddy."})

	tests := []struct {
		name string
		key  string
		n    int
		want []Line
	}{
		{"all lines", "Guard Tyuzas", 0, []Line{
			{Speaker: "Guard Tyuzas", Text: "Report to me, Entity."},
			{Speaker: "Player", Text: "Who are you?"},
		}},
		{"delta only", "Guard Tyuzas", 1, []Line{{Speaker: "Player", Text: "Who are you?"}}},
		{"nothing new", "Guard Tyuzas", 2, nil},
		{"negative offset", "Guard Tyuzas", -1, nil},
		{"unknown conversation", "Nobody", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Since(tt.key, tt.n))
		})
	}

	assert.Equal(t, 2, c.Len("Guard Tyuzas"))
	assert.Equal(t, 0, c.Len("Nobody"))
	assert.Equal(t, []string{"Guard Tyuzas", "Prisoner Qawer"}, c.Keys())
}

func TestConversations_CloneIsIndependent(t *testing.T) {
	c := Conversations{}
	c.Append("Prisoner Qawer", Line{Speaker: "Prisoner Qawer", Text: "one"})

	clone := c.Clone()
	clone.Append("Prisoner Qawer", Line{Speaker: "Prisoner Qawer", Text: "two"})
	clone.Append("Guard Tyuzas", Line{Speaker: "Guard Tyuzas", Text: "three"})

	assert.Equal(t, 1, c.Len("Prisoner Qawer"))
	assert.Equal(t, 0, c.Len("Guard Tyuzas"))
	assert.Equal(t, 2, clone.Len("Prisoner Qawer"))
}

func TestConversations_Last(t *testing.T) {
	c := Conversations{}
	_, ok := c.Last("Prisoner Qawer")
	assert.False(t, ok)

	c.Append("Prisoner Qawer", Line{Speaker: "Prisoner Qawer", Text: "first"})
	c.Append("Prisoner Qawer", Line{Speaker: "Player", Text: "second"})
	last, ok := c.Last("Prisoner Qawer")
	assert.True(t, ok)
	assert.True(t, last.IsFrom("Player"))
	assert.Equal(t, "second", last.Text)
}
