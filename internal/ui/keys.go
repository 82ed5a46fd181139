package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	Refresh     key.Binding
	CycleScheme key.Binding
	ToggleMode  key.Binding
	NextView    key.Binding
	PrevView    key.Binding
	Escape      key.Binding

	// View switching
	ViewDashboard     key.Binding
	ViewDrives        key.Binding
	ViewJobs          key.Binding
	ViewNotifications key.Binding
	ViewTranscoder    key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),
		CycleScheme: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle color scheme"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle light/dark"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "Next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "Previous view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Return to dashboard"),
		),

		ViewDashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Dashboard"),
		),
		ViewDrives: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Drives"),
		),
		ViewJobs: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Jobs"),
		),
		ViewNotifications: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Notifications"),
		),
		ViewTranscoder: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Transcoder"),
		),

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
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewDashboard, k.ViewDrives, k.ViewJobs, k.ViewNotifications, k.ViewTranscoder},
		{k.NextView, k.PrevView, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Refresh, k.CycleScheme, k.ToggleMode, k.Help, k.Quit},
	}
}
