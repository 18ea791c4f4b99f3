package designer

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the designer key bindings.
type KeyMap struct {
	AddRow       key.Binding
	RemoveRow    key.Binding
	AddColumn    key.Binding
	RemoveColumn key.Binding

	GapUp       key.Binding
	GapDown     key.Binding
	PaddingUp   key.Binding
	PaddingDown key.Binding
	RadiusUp    key.Binding
	RadiusDown  key.Binding

	CycleBorderStyle key.Binding
	CycleBorderColor key.Binding
	CycleBackground  key.Binding
	ToggleSampleText key.Binding

	Reset key.Binding

	CopyMarkup     key.Binding
	CopyStylesheet key.Binding
	TogglePreview  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddRow:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "add row")),
		RemoveRow:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "remove row")),
		AddColumn:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "add column")),
		RemoveColumn: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "remove column")),

		GapUp:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gap +")),
		GapDown:     key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "gap -")),
		PaddingUp:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "padding +")),
		PaddingDown: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "padding -")),
		RadiusUp:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "radius +")),
		RadiusDown:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "radius -")),

		CycleBorderStyle: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "border style")),
		CycleBorderColor: key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "border color")),
		CycleBackground:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "background")),
		ToggleSampleText: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sample text")),

		Reset: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),

		CopyMarkup:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "copy html")),
		CopyStylesheet: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "copy css")),
		TogglePreview:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "preview")),
	}
}
