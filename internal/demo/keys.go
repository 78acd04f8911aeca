package demo

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Random    key.Binding
	Increment key.Binding
	Decrement key.Binding
	Format    key.Binding
	Debug     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Random: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r/space", "random"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+", "step up"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("-", "step down"),
		),
		Format: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "format"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Random, k.Increment, k.Decrement, k.Format, k.Debug, k.Quit}
}
