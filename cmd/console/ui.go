package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/drama-engine/internal/config"
	"github.com/jwebster45206/drama-engine/pkg/actor"
	"github.com/jwebster45206/drama-engine/pkg/drama"
	"github.com/jwebster45206/drama-engine/pkg/state"
)

const (
	PlaceHolderText = "Say something (@Name to pick who hears it)..."

	// moveStep is how far one arrow key press moves the player in arena units.
	moveStep = 10
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config  *config.Config
	manager *drama.Manager

	snap       *state.Snapshot
	pos        actor.Position
	transcript transcript
	over       bool
	status     string

	chatViewport viewport.Model
	metaViewport viewport.Model
	input        textinput.Model
	ready        bool
	width        int
	height       int

	// Quit confirmation state
	showQuitModal bool
}

type tickMsg time.Time

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *config.Config, m *drama.Manager, snap *state.Snapshot) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Focus()
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 280
	ti.Width = 50

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		manager:      m,
		snap:         snap,
		pos:          snap.Player.Position,
		transcript:   transcript{}.record(nil, snap),
		input:        ti,
		chatViewport: chatVp,
		metaViewport: metaVp,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m ConsoleUI) tick() tea.Cmd {
	return tea.Tick(m.config.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refresh()

	case tickMsg:
		return m.advance()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			return m.move(0, -moveStep), nil
		case tea.KeyDown:
			return m.move(0, moveStep), nil
		case tea.KeyLeft:
			return m.move(-moveStep, 0), nil
		case tea.KeyRight:
			return m.move(moveStep, 0), nil
		case tea.KeyCtrlY:
			if err := clipboard.WriteAll(m.transcript.plain()); err != nil {
				m.status = "Copy failed: " + err.Error()
			} else {
				m.status = "Transcript copied to clipboard."
			}
			m.refresh()
			return m, nil
		case tea.KeyEnter:
			return m.say()
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// advance runs one drama manager tick and schedules the next one.
func (m ConsoleUI) advance() (tea.Model, tea.Cmd) {
	if m.over {
		return m, nil
	}
	next, ok := m.manager.Advance(m.pos, m.config.TickInterval)
	if !ok {
		m.over = true
		m.transcript = append(m.transcript, entry{kind: entryEvent, text: "The story is over. Press Esc to leave."})
		m.refresh()
		return m, nil
	}
	m.transcript = m.transcript.record(m.snap, next)
	m.snap = next
	m.refresh()
	return m, m.tick()
}

func (m ConsoleUI) move(dx, dy float64) ConsoleUI {
	if m.over {
		return m
	}
	m.pos.X = min(max(m.pos.X+dx, 0), m.config.ArenaWidth)
	m.pos.Y = min(max(m.pos.Y+dy, 0), m.config.ArenaHeight)
	m.status = ""
	m.refresh()
	return m
}

func (m ConsoleUI) say() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}
	m.input.Reset()

	to, text := addressee(m.snap, raw)
	if to == "" {
		m.transcript = append(m.transcript, entry{kind: entryError, text: "nobody is close enough to hear you"})
		m.refresh()
		return m, nil
	}

	next, err := m.manager.Say(to, text)
	if err != nil {
		m.transcript = append(m.transcript, entry{kind: entryError, text: err.Error()})
		m.refresh()
		return m, nil
	}
	m.transcript = m.transcript.record(m.snap, next)
	m.snap = next
	m.refresh()
	return m, nil
}

func (m *ConsoleUI) layout() {
	chatWidth := int(float64(m.width)*0.6) - 4
	metaWidth := m.width - chatWidth - 6

	m.chatViewport.Width = chatWidth - 2
	m.chatViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.input.Width = chatWidth - 8
}

// refresh re-renders both panels from the current snapshot.
func (m *ConsoleUI) refresh() {
	if !m.ready {
		return
	}
	chatWidth := m.chatViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render("INDIGO PRISON") + "\n\n")
	content.WriteString("Walk with the arrow keys. Type to talk, Enter to send.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(chatWidth-6, 1))) + "\n\n")
	content.WriteString(m.transcript.render(chatWidth))

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
	m.metaViewport.SetContent(m.writeMetadata())
}

func (m ConsoleUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("ARENA") + "\n\n")

	cols := max(m.metaViewport.Width-2, 8)
	rows := max(cols*int(m.config.ArenaHeight)/int(m.config.ArenaWidth)/2, 4)
	markers := m.snap.Markers()
	markers[0].Position = m.pos
	content.WriteString(renderArena(markers, m.config.ArenaWidth, m.config.ArenaHeight, cols, rows) + "\n\n")

	content.WriteString("Intensity:\n")
	if m.over {
		content.WriteString("resolved\n\n")
	} else {
		content.WriteString(fmt.Sprintf("%d (%s left)\n\n", m.manager.Tier(), m.manager.Remaining().Truncate(time.Second)))
	}

	content.WriteString("Carrying:\n")
	if len(m.snap.Player.Inventory) == 0 {
		content.WriteString("Nothing\n")
	}
	for _, it := range m.snap.Player.Inventory {
		content.WriteString(fmt.Sprintf("• %s\n", it.Name))
	}

	content.WriteString("\nKnown:\n")
	known := 0
	for _, c := range m.snap.Characters {
		if !c.Hidden {
			known++
			content.WriteString(fmt.Sprintf("• %s\n", c.Name))
		}
	}
	if known == 0 {
		content.WriteString("Nobody yet\n")
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Arrows: Walk\n")
	content.WriteString("• Enter: Say\n")
	content.WriteString("• Ctrl+Y: Copy transcript\n")
	content.WriteString("• Esc: Quit\n")

	if m.status != "" {
		content.WriteString("\n" + promptStyle.Render(m.status) + "\n")
	}
	return content.String()
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tickMsg:
		// Pause the story while the modal is up, but keep the clock scheduled.
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.input.Focus()
				return m, textinput.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave Indigo?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to walk away from the prison?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.6) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 1))),
			m.input.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
