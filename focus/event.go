package focus

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines which keys a Cycle treats as Enter.
type KeyMap struct {
	Enter key.Binding
	// CtrlEnter is Enter with the control modifier held. Most terminals
	// deliver Ctrl+Enter as a line feed, hence ctrl+j.
	CtrlEnter key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next field"),
		),
		CtrlEnter: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("ctrl+j", "new line"),
		),
	}
}

// KeyEvent is a key message travelling through an element's handlers.
type KeyEvent struct {
	tea.KeyMsg

	enter     bool
	ctrl      bool
	prevented bool
	cmds      []tea.Cmd
}

func newKeyEvent(msg tea.KeyMsg, keys KeyMap) *KeyEvent {
	ev := &KeyEvent{KeyMsg: msg}
	switch {
	case key.Matches(msg, keys.CtrlEnter):
		ev.enter = true
		ev.ctrl = true
	case key.Matches(msg, keys.Enter):
		ev.enter = true
	}
	return ev
}

// IsEnter reports whether the key is Enter, with or without Ctrl.
func (e *KeyEvent) IsEnter() bool { return e.enter }

// Ctrl reports whether the control modifier was held.
func (e *KeyEvent) Ctrl() bool { return e.ctrl }

// PreventDefault stops the key from reaching the element's native handling.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// Cmd returns the commands produced while handling the event, such as the
// cursor blink of a newly focused input. It is nil when there are none.
func (e *KeyEvent) Cmd() tea.Cmd {
	if len(e.cmds) == 0 {
		return nil
	}
	return tea.Batch(e.cmds...)
}

func (e *KeyEvent) addCmd(cmd tea.Cmd) {
	if cmd != nil {
		e.cmds = append(e.cmds, cmd)
	}
}
