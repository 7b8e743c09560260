package main

import (
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/drama-engine/internal/config"
	"github.com/jwebster45206/drama-engine/pkg/drama"
	"github.com/jwebster45206/drama-engine/pkg/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T, budgets ...time.Duration) ConsoleUI {
	t.Helper()
	cfg := &config.Config{ArenaWidth: 400, ArenaHeight: 300, TickInterval: time.Second}
	tu := tuning.Default()
	if len(budgets) > 0 {
		tu.TierBudgets = budgets
	}
	m := drama.New(tu, rand.New(rand.NewPCG(3, 3)), nil)
	snap, err := m.InitializeWith(drama.OpeningCellblock, cfg.ArenaWidth, cfg.ArenaHeight)
	require.NoError(t, err)

	ui := NewConsoleUI(cfg, m, snap)
	model, _ := ui.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(ConsoleUI)
}

func TestMoveClampsToArena(t *testing.T) {
	ui := newTestUI(t)
	start := ui.pos

	model, _ := ui.Update(tea.KeyMsg{Type: tea.KeyUp})
	ui = model.(ConsoleUI)
	assert.Equal(t, start.Y-moveStep, ui.pos.Y)

	for range 100 {
		model, _ = ui.Update(tea.KeyMsg{Type: tea.KeyLeft})
		ui = model.(ConsoleUI)
	}
	assert.Equal(t, 0.0, ui.pos.X)
}

func TestTickRevealsNeighbour(t *testing.T) {
	ui := newTestUI(t)

	model, cmd := ui.Update(tickMsg(time.Now()))
	ui = model.(ConsoleUI)
	require.NotNil(t, cmd, "the clock keeps running")

	// The prisoner starts beside the player in the cellblock, so the first
	// tick is a reveal trigger.
	revealed := 0
	for _, c := range ui.snap.Characters {
		if !c.Hidden {
			revealed++
		}
	}
	assert.Positive(t, revealed)
	assert.Contains(t, ui.transcript.plain(), " steps out of the shadows.")
}

func TestStoryOverStopsTicks(t *testing.T) {
	ui := newTestUI(t, time.Second)

	model, cmd := ui.Update(tickMsg(time.Now()))
	ui = model.(ConsoleUI)
	assert.True(t, ui.over)
	assert.Nil(t, cmd)
	assert.Contains(t, ui.transcript.plain(), "The story is over.")
}

func TestSayUnknownCharacterIsShownInline(t *testing.T) {
	ui := newTestUI(t)
	ui.input.SetValue("@Nobody hello")

	model, _ := ui.Update(tea.KeyMsg{Type: tea.KeyEnter})
	ui = model.(ConsoleUI)
	require.NotEmpty(t, ui.transcript)
	last := ui.transcript[len(ui.transcript)-1]
	assert.Equal(t, entryError, last.kind)
	assert.Empty(t, ui.input.Value())
}
