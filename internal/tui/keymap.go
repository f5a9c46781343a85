package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Select   key.Binding
	Rollback key.Binding
	Page     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Page, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Select, k.Rollback},
		{k.Page, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←/↑", "previous tile"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "down", "l", "j"),
			key.WithHelp("→/↓", "next tile"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select tile"),
		),
		Rollback: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo last move"),
		),
		Page: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "play/ranking"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
