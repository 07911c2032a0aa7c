package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Edit       key.Binding
	Invalid    key.Binding
	Delete     key.Binding
	Login      key.Binding
	Sticky     key.Binding
	Dismiss    key.Binding
	DismissAll key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add product")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Invalid:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "submit invalid")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Login:      key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log in/out")),
		Sticky:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sticky toast")),
		Dismiss:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss newest")),
		DismissAll: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "dismiss all")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Dismiss, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Edit},
		{k.Invalid, k.Delete, k.Login},
		{k.Sticky, k.Dismiss, k.DismissAll},
		{k.Help, k.Quit},
	}
}
