package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/Oshri-Halevi/TaskManagerApp/internal/config"
)

// keyMap holds the watch screen bindings built from the configured mappings
type keyMap struct {
	ToggleDone  key.Binding
	DeleteTask  key.Binding
	Undo        key.Binding
	CycleFilter key.Binding
	CycleSort   key.Binding
	ToggleToday key.Binding
	PrevTask    key.Binding
	NextTask    key.Binding
	ShowHelp    key.Binding
	Quit        key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		ToggleDone: key.NewBinding(
			key.WithKeys(km.ToggleDone),
			key.WithHelp(km.ToggleDone, "toggle done"),
		),
		DeleteTask: key.NewBinding(
			key.WithKeys(km.DeleteTask),
			key.WithHelp(km.DeleteTask, "delete"),
		),
		Undo: key.NewBinding(
			key.WithKeys(km.Undo),
			key.WithHelp(km.Undo, "undo delete"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys(km.CycleFilter),
			key.WithHelp(km.CycleFilter, "filter"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys(km.CycleSort),
			key.WithHelp(km.CycleSort, "sort"),
		),
		ToggleToday: key.NewBinding(
			key.WithKeys(km.ToggleToday),
			key.WithHelp(km.ToggleToday, "today"),
		),
		PrevTask: key.NewBinding(
			key.WithKeys(km.PrevTask, "up"),
			key.WithHelp(km.PrevTask+"/↑", "up"),
		),
		NextTask: key.NewBinding(
			key.WithKeys(km.NextTask, "down"),
			key.WithHelp(km.NextTask+"/↓", "down"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleDone, k.CycleFilter, k.CycleSort, k.ToggleToday, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTask, k.NextTask},
		{k.ToggleDone, k.DeleteTask, k.Undo},
		{k.CycleFilter, k.CycleSort, k.ToggleToday},
		{k.ShowHelp, k.Quit},
	}
}
