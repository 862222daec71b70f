package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/combobox/internal/combobox"
)

// KeyMap lists the picker's key bindings. Navigation bindings are forwarded to
// the engine; everything else not bound here goes to the text field.
type KeyMap struct {
	Down      key.Binding
	Up        key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	Dismiss   key.Binding
	RemoveTag key.Binding
	Clear     key.Binding
	Submit    key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first option"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "last option"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close/cancel"),
		),
		RemoveTag: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("Bksp", "remove last tag"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "clear"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "done"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Submit, k.Dismiss, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Home, k.End},
		{k.Select, k.RemoveTag, k.Clear},
		{k.Submit, k.Dismiss, k.Quit, k.Help},
	}
}

// engineKey maps a terminal key to the engine's key set.
func (k KeyMap) engineKey(msg tea.KeyMsg) (combobox.Key, bool) {
	switch {
	case key.Matches(msg, k.Down):
		return combobox.KeyArrowDown, true
	case key.Matches(msg, k.Up):
		return combobox.KeyArrowUp, true
	case key.Matches(msg, k.Home):
		return combobox.KeyHome, true
	case key.Matches(msg, k.End):
		return combobox.KeyEnd, true
	case key.Matches(msg, k.Select):
		return combobox.KeyEnter, true
	case key.Matches(msg, k.Dismiss):
		return combobox.KeyEscape, true
	case key.Matches(msg, k.RemoveTag):
		return combobox.KeyBackspace, true
	default:
		return combobox.KeyUnknown, false
	}
}
