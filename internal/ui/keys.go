package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding
	Login      key.Binding

	// Page switching
	PageHome    key.Binding
	PageHistory key.Binding
	PageFlagged key.Binding
	PageManager key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Home
	Search      key.Binding
	Open        key.Binding
	CycleGenre  key.Binding
	CycleDecade key.Binding

	// History
	Export       key.Binding
	ClearHistory key.Binding

	// Flagged
	ToggleFlags key.Binding
	OpenFlagged key.Binding
	CollapseAll key.Binding

	// Manager
	ToggleSelect key.Binding
	SelectAll    key.Binding
	Remove       key.Binding
	AddDocuments key.Binding

	// Dialogs
	Confirm    key.Binding
	Cancel     key.Binding
	NextField  key.Binding
	SwitchMode key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next page"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous page"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back"),
		),
		Login: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Login / sign up"),
		),

		// Page switching
		PageHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Catalog"),
		),
		PageHistory: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "View history"),
		),
		PageFlagged: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Flagged documents"),
		),
		PageManager: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Documents manager"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Home
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open document"),
		),
		CycleGenre: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle genre"),
		),
		CycleDecade: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Cycle decade"),
		),

		// History
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export CSV"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear history"),
		),

		// Flagged
		ToggleFlags: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "Show/hide flags"),
		),
		OpenFlagged: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open document"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Collapse all"),
		),

		// Manager
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Select"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Select all / none"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Remove selected"),
		),
		AddDocuments: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Add documents"),
		),

		// Dialogs
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc", "Cancel"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		SwitchMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Switch form mode"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Login, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Pages
		{k.Tab, k.PageHome, k.PageHistory, k.PageFlagged, k.PageManager, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom},
		// Catalog
		{k.Search, k.Open, k.CycleGenre, k.CycleDecade},
		// History and flags
		{k.Export, k.ClearHistory, k.ToggleFlags, k.OpenFlagged, k.CollapseAll},
		// Manager
		{k.ToggleSelect, k.SelectAll, k.Remove, k.AddDocuments},
		// General
		{k.Login, k.CycleTheme, k.Help, k.Quit},
	}
}

// pageHelp returns the bindings relevant to one page for the footer.
func (k keyMap) pageHelp(p pageKind) []key.Binding {
	switch p {
	case pageListing:
		return []key.Binding{k.Search, k.Open, k.CycleGenre, k.CycleDecade, k.Tab, k.Help, k.Quit}
	case pageDetail:
		return []key.Binding{k.Escape, k.Up, k.Down, k.Tab, k.Quit}
	case pageHistory:
		return []key.Binding{k.Export, k.ClearHistory, k.Tab, k.Help, k.Quit}
	case pageFlagged:
		return []key.Binding{k.ToggleFlags, k.OpenFlagged, k.CollapseAll, k.Tab, k.Help, k.Quit}
	case pageManager:
		return []key.Binding{k.Search, k.ToggleSelect, k.SelectAll, k.Remove, k.AddDocuments, k.Quit}
	default:
		return k.ShortHelp()
	}
}
