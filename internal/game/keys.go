package game

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds terminal keys to engine operations.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Down     key.Binding
	Rotate   key.Binding
	HardDrop key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap uses the arrows, space and escape, with vi-style aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "rotate"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.HardDrop, k.Pause, k.Restart, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate},
		{k.HardDrop, k.Pause, k.Restart, k.Quit},
	}
}
