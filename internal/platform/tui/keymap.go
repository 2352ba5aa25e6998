package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout/internal/core"
)

// KeyMap defines the terminal key bindings.
// Terminals report shift+arrow as a key of its own, so boosted movement has
// separate bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	BoostLeft  key.Binding
	BoostRight key.Binding
	Close      key.Binding
	Continue   key.Binding
	Up         key.Binding
	Down       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.BoostLeft, k.Close, k.Continue, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.BoostLeft, k.BoostRight},
		{k.Close, k.Continue, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		BoostLeft: key.NewBinding(
			key.WithKeys("shift+left", "A"),
			key.WithHelp("shift", "boost"),
		),
		BoostRight: key.NewBinding(
			key.WithKeys("shift+right", "D"),
			key.WithHelp("S-→", "boost right"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/quit"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// Actions translates a key message to the game actions it presses.
// Quit is not an action; callers check it with key.Matches first.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.BoostLeft):
		return []core.Action{core.ActionLeft, core.ActionBoost}
	case key.Matches(msg, k.BoostRight):
		return []core.Action{core.ActionRight, core.ActionBoost}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Close):
		return []core.Action{core.ActionClose}
	case key.Matches(msg, k.Continue):
		return []core.Action{core.ActionContinue}
	case key.Matches(msg, k.Up):
		return []core.Action{core.ActionUp}
	case key.Matches(msg, k.Down):
		return []core.Action{core.ActionDown}
	}
	return nil
}
