package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/games/breakout"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// LevelInfo describes one map in the picker.
type LevelInfo struct {
	Level   int
	Name    string
	Bricks  int
	Skipped int
}

// Levels lists every consecutive map the loader can find.
func Levels(l breakout.Loader) []LevelInfo {
	var out []LevelInfo
	for _, n := range l.Levels() {
		md, level, err := l.Load(n)
		if err != nil || level != n {
			continue
		}
		out = append(out, LevelInfo{Level: n, Name: md.Name, Bricks: len(md.Placements), Skipped: len(md.Skipped)})
	}
	return out
}

// LevelSelectModel lets the player choose the starting level.
type LevelSelectModel struct {
	levels   []LevelInfo
	cursor   int
	keys     KeyMap
	width    int
	chosen   int
	quitting bool
}

// NewLevelSelectModel creates a picker over levels.
func NewLevelSelectModel(levels []LevelInfo, width int) LevelSelectModel {
	return LevelSelectModel{levels: levels, keys: DefaultKeyMap(), width: width}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Close):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = core.Clamp(m.cursor-1, 0, max(len(m.levels)-1, 0))
		case key.Matches(msg, m.keys.Down):
			m.cursor = core.Clamp(m.cursor+1, 0, max(len(m.levels)-1, 0))
		case key.Matches(msg, m.keys.Continue):
			if len(m.levels) > 0 {
				m.chosen = m.levels[m.cursor].Level
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting || m.chosen != 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select starting level:", m.width))
	b.WriteString("\n\n")

	for i, lv := range m.levels {
		line := fmt.Sprintf("  %2d. %-12s %3d bricks", lv.Level, lv.Name, lv.Bricks)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Play  |  Esc: Quit"), m.width))
	return b.String()
}

// Chosen returns the selected level, or 0 if the player backed out.
func (m LevelSelectModel) Chosen() int {
	return m.chosen
}

// centerText pads s so it sits in the middle of width columns.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// RunLevelSelector shows the picker and returns the chosen level,
// or 0 if the player quit.
func RunLevelSelector(levels []LevelInfo, width int) (int, error) {
	p := tea.NewProgram(NewLevelSelectModel(levels, width), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(LevelSelectModel)
	if !ok {
		return 0, nil
	}
	return m.Chosen(), nil
}
