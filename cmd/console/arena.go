package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

const (
	glyphFloor    = '·'
	glyphPlayer   = '@'
	glyphPrisoner = 'P'
	glyphGuard    = 'G'
	glyphOther    = 'C'
	glyphItem     = '*'
	glyphDead     = 'x'
)

var (
	floorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	npcStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// arenaGrid scales markers onto a cols x rows character grid. Hidden
// entities are left out; the player is drawn last so it is never covered.
func arenaGrid(markers []state.Marker, width, height float64, cols, rows int) [][]rune {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(glyphFloor), cols))
	}

	var player *state.Marker
	for i, mk := range markers {
		if mk.Kind == state.MarkerPlayer {
			player = &markers[i]
			continue
		}
		if mk.Hidden {
			continue
		}
		col, row := cell(mk.Position, width, height, cols, rows)
		grid[row][col] = glyph(mk)
	}
	if player != nil {
		col, row := cell(player.Position, width, height, cols, rows)
		grid[row][col] = glyphPlayer
	}
	return grid
}

func glyph(mk state.Marker) rune {
	switch {
	case !mk.Alive:
		return glyphDead
	case mk.Kind == state.MarkerItem:
		return glyphItem
	case actor.IsPrisoner(mk.Name):
		return glyphPrisoner
	case actor.IsGuard(mk.Name):
		return glyphGuard
	default:
		return glyphOther
	}
}

func cell(p actor.Position, width, height float64, cols, rows int) (int, int) {
	col := int(p.X / width * float64(cols-1))
	row := int(p.Y / height * float64(rows-1))
	return min(max(col, 0), cols-1), min(max(row, 0), rows-1)
}

func renderArena(markers []state.Marker, width, height float64, cols, rows int) string {
	var b strings.Builder
	for i, line := range arenaGrid(markers, width, height, cols, rows) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range line {
			b.WriteString(styleFor(r).Render(string(r)))
		}
	}
	return b.String()
}

func styleFor(r rune) lipgloss.Style {
	switch r {
	case glyphPlayer:
		return playerStyle
	case glyphPrisoner, glyphGuard, glyphOther:
		return npcStyle
	case glyphItem:
		return itemStyle
	case glyphDead:
		return deadStyle
	default:
		return floorStyle
	}
}
