package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamebox/internal/core"
)

// SideSelection holds the user's mark choice for Tic-Tac-Toe.
type SideSelection struct {
	HumanMark string // "X" or "O"
}

// SideMenuModel lets users pick which mark to play in Tic-Tac-Toe.
type SideMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection SideSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewSideMenuModel creates a new side selection model.
func NewSideMenuModel(width, height int) SideMenuModel {
	return SideMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SideMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SideMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SideMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: X, O
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor == 0 {
			m.selection = SideSelection{HumanMark: "X"}
		} else {
			m.selection = SideSelection{HumanMark: "O"}
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the side selection.
func (m SideMenuModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T I C - T A C - T O E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick your mark:", m.width))
	b.WriteString("\n\n")

	options := []string{
		"Play as X (you move first)",
		"Play as O (computer moves first)",
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SideMenuModel) Selected() *SideSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SideMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SideMenuModel) WantsBack() bool {
	return m.back
}

// RunSideSelector runs the Tic-Tac-Toe side selection.
// Returns nil when the user backed out or quit.
func RunSideSelector(cfg core.RuntimeConfig) (*SideSelection, error) {
	model := NewSideMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SideMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
