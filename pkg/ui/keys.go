package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding
	Last     key.Binding

	Open   key.Binding
	Parent key.Binding
	Origin key.Binding

	SortName  key.Binding
	SortSize  key.Binding
	SortCount key.Binding
	SortOwner key.Binding
	SortCtime key.Binding

	ToggleOwner key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("Up, k", "Move cursor up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("Down, j", "Move cursor down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("Page Up", "Jump cursor up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("Page Down", "Jump cursor down")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("Home, g", "Select first entry")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("End, G", "Select last entry")),

		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Open directory")),
		Parent: key.NewBinding(key.WithKeys("backspace", "h"), key.WithHelp("Backspace, h", "Go to parent directory")),
		Origin: key.NewBinding(key.WithKeys(" "), key.WithHelp("Space", "Return to start directory")),

		SortName:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Sort by name")),
		SortSize:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Sort by size")),
		SortCount: key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c, C", "Sort by file count")),
		SortOwner: key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "Sort by owner")),
		SortCtime: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Sort by change time")),

		ToggleOwner: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "Toggle show owner")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Show this help message")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q, Esc", "Quit")),
	}
}

// helpEntries drives the help popup, in display order.
func (k keyMap) helpEntries() []key.Binding {
	return []key.Binding{
		k.Quit, k.Down, k.Up, k.PageDown, k.PageUp,
		k.Open, k.Parent, k.Origin,
		k.SortName, k.SortSize, k.SortCount, k.SortOwner, k.SortCtime,
		k.ToggleOwner, k.Help, k.First, k.Last,
	}
}
