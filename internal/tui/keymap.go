package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Start  key.Binding
	Submit key.Binding
	Delete key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Start, km.Submit, km.Delete, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Start, km.Submit, km.Delete},
		{km.Left, km.Right, km.Up, km.Down},
		{km.Quit},
	}
}

// KeyMap implements help.KeyMap
var _ help.KeyMap = KeyMap{}

var DefaultKeyMap = KeyMap{
	Start: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "iniciar / reiniciar"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "adivinar"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace", "delete"),
		key.WithHelp("⌫", "borrar"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "izquierda"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "tab"),
		key.WithHelp("→", "derecha"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "arriba"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "abajo"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "salir"),
	),
}
