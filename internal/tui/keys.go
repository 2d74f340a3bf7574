package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/uptask/internal/config"
)

type keyMap struct {
	PrevColumn    key.Binding
	NextColumn    key.Binding
	PrevTask      key.Binding
	NextTask      key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	Refresh       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// newKeyMap binds the configured keys. Arrow keys and the bracket forms
// of the move keys always work as well.
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn: key.NewBinding(
			key.WithKeys(km.PrevColumn, "left"),
			key.WithHelp(km.PrevColumn+"/←", "prev column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys(km.NextColumn, "right"),
			key.WithHelp(km.NextColumn+"/→", "next column"),
		),
		PrevTask: key.NewBinding(
			key.WithKeys(km.PrevTask, "up"),
			key.WithHelp(km.PrevTask+"/↑", "prev task"),
		),
		NextTask: key.NewBinding(
			key.WithKeys(km.NextTask, "down"),
			key.WithHelp(km.NextTask+"/↓", "next task"),
		),
		MoveTaskLeft: key.NewBinding(
			key.WithKeys(km.MoveTaskLeft, "<"),
			key.WithHelp(km.MoveTaskLeft+"/<", "move to prev status"),
		),
		MoveTaskRight: key.NewBinding(
			key.WithKeys(km.MoveTaskRight, ">"),
			key.WithHelp(km.MoveTaskRight+"/>", "move to next status"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(km.Refresh),
			key.WithHelp(km.Refresh, "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveTaskLeft, k.MoveTaskRight, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.MoveTaskLeft, k.MoveTaskRight},
		{k.Refresh, k.Help, k.Quit},
	}
}
