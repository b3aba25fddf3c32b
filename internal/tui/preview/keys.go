package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	FlipDirection key.Binding
	NextTheme     key.Binding
	PrevTheme     key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		FlipDirection: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "flip direction"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("t", "right", "l"),
			key.WithHelp("t/→", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("T", "left", "h"),
			key.WithHelp("T/←", "previous theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FlipDirection, k.NextTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FlipDirection, k.NextTheme, k.PrevTheme},
		{k.Help, k.Quit},
	}
}
