package tui

import "github.com/charmbracelet/bubbles/key"

// Key bindings reference:
//
// Global:
//   ctrl+c    Quit the application
//
// Form menu:
//   j/down    Move cursor down
//   k/up      Move cursor up
//   1-6       Open a form directly
//   enter     Open the selected form
//   q         Quit
//
// Demo form:
//   enter     Next field (buttons keep their native enter)
//   ctrl+j    New line in a text area with the ctrl+enter strategy
//   tab       Passed to the field unchanged
//   esc       Back to the menu

type menuKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Quit key.Binding
}

var menuKeys = menuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

type formKeyMap struct {
	Next    key.Binding
	Newline key.Binding
	Back    key.Binding
}

var formKeys = formKeyMap{
	Next: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "next field"),
	),
	Newline: key.NewBinding(
		key.WithKeys("ctrl+j"),
		key.WithHelp("ctrl+j", "ctrl+enter"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Newline, k.Back}
}
