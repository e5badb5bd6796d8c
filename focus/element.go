// Package focus makes Enter behave like Tab inside a set of Bubble Tea form
// elements.
//
// A Cycle is built from an ordered list of elements, configured with its
// chainable setters and then initialized once:
//
//	c := focus.NewCycle(name, email, notes, submit).SetCyclic(true)
//	c.Init()
//
// From then on the host model hands key messages to Cycle.Update (or to
// Cycle.Dispatch for the element that received them). Enter on a regular field
// moves focus to the next element. Buttons keep their native Enter behavior,
// and text areas follow the configured TextAreaStrategy.
package focus

import tea "github.com/charmbracelet/bubbletea"

// Attribute names read from elements.
const (
	// AttrTabIndex holds the numeric tab order used when UseTabIndex is set.
	AttrTabIndex = "tabindex"
	// AttrIsAction marks an action element when AutoDetectAction is off.
	AttrIsAction = "data-is-action"
)

// Role is the semantic kind of an element.
type Role int

const (
	RoleField Role = iota
	RoleTextArea
	RoleButton
	RoleLink
)

func (r Role) String() string {
	switch r {
	case RoleField:
		return "field"
	case RoleTextArea:
		return "textarea"
	case RoleButton:
		return "button"
	case RoleLink:
		return "link"
	default:
		return "unknown"
	}
}

// Element is a focusable component taking part in a Cycle. Implementations
// must be comparable, which in practice means pointer types.
type Element interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Role() Role
	Attr(name string) (string, bool)
}

// Focusable is implemented by elements that can temporarily refuse focus,
// such as disabled inputs.
type Focusable interface {
	CanFocus() bool
}

// NewlineInserter is implemented by multi-line elements.
type NewlineInserter interface {
	InsertNewline()
}

// Updater is implemented by elements with native key handling. Cycle.Update
// forwards messages to it.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Attrs is a set of element attributes.
type Attrs map[string]string

// Attr returns the named attribute and whether it is present.
func (a Attrs) Attr(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}
