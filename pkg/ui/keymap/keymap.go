package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap is a map of key bindings for the UI.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Back    key.Binding
	Select  key.Binding
	Section key.Binding
	UpDown  key.Binding
	Create  key.Binding
	Filter  key.Binding
	Refresh key.Binding
}

// DefaultKeyMap returns the default key map.
func DefaultKeyMap() *KeyMap {
	km := new(KeyMap)

	km.Quit = key.NewBinding(
		key.WithKeys(
			"ctrl+c",
			"q",
		),
		key.WithHelp(
			"q",
			"quit",
		),
	)

	km.Help = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp(
			"?",
			"toggle help",
		),
	)

	km.Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp(
			"esc",
			"back",
		),
	)

	km.Select = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp(
			"enter",
			"select",
		),
	)

	km.Section = key.NewBinding(
		key.WithKeys(
			"tab",
			"shift+tab",
		),
		key.WithHelp(
			"tab",
			"section",
		),
	)

	km.UpDown = key.NewBinding(
		key.WithKeys(
			"up",
			"down",
			"k",
			"j",
		),
		key.WithHelp(
			"↑↓",
			"navigate",
		),
	)

	km.Create = key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp(
			"n",
			"new",
		),
	)

	km.Filter = key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp(
			"f",
			"filter",
		),
	)

	km.Refresh = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp(
			"r",
			"refresh",
		),
	)

	return km
}
