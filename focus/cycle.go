package focus

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Config holds the settings of a Cycle.
type Config struct {
	// UseTabIndex orders elements by their tabindex attribute instead of
	// the order they were passed in.
	UseTabIndex bool
	// AutoDetectAction treats buttons as action elements. When false, only
	// elements carrying the data-is-action attribute are actions.
	AutoDetectAction bool
	TextAreaStrategy TextAreaStrategy
	// Cyclic wraps focus from the last element back to the first.
	Cyclic bool
}

// DefaultConfig returns the configuration of a new Cycle.
func DefaultConfig() Config {
	return Config{
		AutoDetectAction: true,
		TextAreaStrategy: StrategyTab,
	}
}

// Handler receives key events for one element.
type Handler func(ev *KeyEvent)

// Cycle moves focus through a fixed set of elements when Enter is pressed.
type Cycle struct {
	elements  []Element
	cfg       Config
	keys      KeyMap
	positions map[Element]int
	handlers  map[Element][]Handler
}

// NewCycle returns a Cycle over elements with the default configuration.
// Call Init once configuration is done.
func NewCycle(elements ...Element) *Cycle {
	return &Cycle{
		elements:  slices.Clone(elements),
		cfg:       DefaultConfig(),
		keys:      DefaultKeyMap(),
		positions: make(map[Element]int, len(elements)),
		handlers:  make(map[Element][]Handler, len(elements)),
	}
}

// SetUseTabIndex sets whether Init orders elements by tabindex.
func (c *Cycle) SetUseTabIndex(v bool) *Cycle {
	c.cfg.UseTabIndex = v
	return c
}

// SetAutoDetectAction sets how action elements are recognized.
func (c *Cycle) SetAutoDetectAction(v bool) *Cycle {
	c.cfg.AutoDetectAction = v
	return c
}

// SetCyclic sets whether Enter on the last element focuses the first one.
// An action element in last position keeps its native Enter either way.
func (c *Cycle) SetCyclic(v bool) *Cycle {
	c.cfg.Cyclic = v
	return c
}

// SetTextAreaStrategy sets what Enter does inside text areas. Unknown values
// return an error wrapping ErrInvalidArgument and leave the config as is.
func (c *Cycle) SetTextAreaStrategy(s TextAreaStrategy) (*Cycle, error) {
	v, err := ParseTextAreaStrategy(string(s))
	if err != nil {
		return c, err
	}
	c.cfg.TextAreaStrategy = v
	return c, nil
}

// SetKeyMap replaces the bindings recognized as Enter and Ctrl+Enter.
func (c *Cycle) SetKeyMap(km KeyMap) *Cycle {
	c.keys = km
	return c
}

// Config returns the current configuration.
func (c *Cycle) Config() Config { return c.cfg }

// Init computes the final order, assigns positions and installs a key
// handler on every element. It must be called exactly once: a second call
// installs a second set of handlers.
func (c *Cycle) Init() {
	if c.cfg.UseTabIndex {
		slices.SortStableFunc(c.elements, func(a, b Element) int {
			return cmp.Compare(tabIndex(a), tabIndex(b))
		})
	}
	cfg := c.cfg
	for i, el := range c.elements {
		c.positions[el] = i
		c.handlers[el] = append(c.handlers[el], c.handler(el, cfg))
	}
}

// IsAction reports whether Enter on el keeps its native behavior.
func (c *Cycle) IsAction(el Element) bool {
	return isAction(el, c.cfg)
}

func isAction(el Element, cfg Config) bool {
	if cfg.AutoDetectAction {
		return el.Role() == RoleButton
	}
	_, ok := el.Attr(AttrIsAction)
	return ok
}

func (c *Cycle) handler(el Element, cfg Config) Handler {
	return func(ev *KeyEvent) {
		if !ev.IsEnter() {
			return
		}
		if isAction(el, cfg) {
			return
		}
		if el.Role() == RoleTextArea {
			switch cfg.TextAreaStrategy {
			case StrategyNewLine:
				return
			case StrategyCtrlEnter:
				if ev.Ctrl() {
					if ni, ok := el.(NewlineInserter); ok {
						ni.InsertNewline()
					}
					ev.PreventDefault()
					return
				}
			}
		}
		ev.PreventDefault()
		c.next(el, cfg, ev)
	}
}

func (c *Cycle) next(el Element, cfg Config, ev *KeyEvent) {
	pos := c.positions[el]
	if cfg.Cyclic && pos == len(c.elements)-1 {
		ev.addCmd(c.Focus(0))
		return
	}
	ev.addCmd(c.Focus(pos + 1))
}

// Dispatch runs the handlers installed on el for msg and returns the event.
// Elements outside the cycle, or a cycle not yet initialized, yield an event
// with nothing prevented.
func (c *Cycle) Dispatch(el Element, msg tea.KeyMsg) *KeyEvent {
	ev := newKeyEvent(msg, c.keys)
	for _, h := range c.handlers[el] {
		h(ev)
	}
	return ev
}

// Update routes msg through the cycle. Key messages go to the focused
// element's handlers and then, unless the default was prevented, to the
// element itself. Other messages reach every element implementing Updater.
func (c *Cycle) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		cmds := make([]tea.Cmd, 0, len(c.elements))
		for _, el := range c.elements {
			if u, ok := el.(Updater); ok {
				cmds = append(cmds, u.Update(msg))
			}
		}
		return tea.Batch(cmds...)
	}

	el := c.Focused()
	if el == nil {
		return nil
	}
	ev := c.Dispatch(el, km)
	if ev.DefaultPrevented() {
		return ev.Cmd()
	}
	var cmd tea.Cmd
	if u, ok := el.(Updater); ok {
		cmd = u.Update(km)
	}
	return tea.Batch(ev.Cmd(), cmd)
}

// Focus focuses the element at position i of the final order and blurs the
// others. Out of range positions and elements that refuse focus are ignored.
func (c *Cycle) Focus(i int) tea.Cmd {
	if i < 0 || i >= len(c.elements) {
		return nil
	}
	target := c.elements[i]
	if f, ok := target.(Focusable); ok && !f.CanFocus() {
		return nil
	}
	for _, el := range c.elements {
		if el != target && el.Focused() {
			el.Blur()
		}
	}
	return target.Focus()
}

// Focused returns the first focused element, or nil.
func (c *Cycle) Focused() Element {
	for _, el := range c.elements {
		if el.Focused() {
			return el
		}
	}
	return nil
}

// Position returns the position assigned to el by Init.
func (c *Cycle) Position(el Element) (int, bool) {
	pos, ok := c.positions[el]
	return pos, ok
}

// Elements returns the elements in their final order.
func (c *Cycle) Elements() []Element {
	return slices.Clone(c.elements)
}

// Len returns the number of elements.
func (c *Cycle) Len() int { return len(c.elements) }

// tabIndex reads the tabindex attribute the way browsers' parseInt does:
// the leading integer counts and anything unparsable is 0.
func tabIndex(el Element) int {
	v, ok := el.Attr(AttrTabIndex)
	if !ok {
		return 0
	}
	v = strings.TrimSpace(v)
	end := 0
	if end < len(v) && (v[end] == '-' || v[end] == '+') {
		end++
	}
	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return 0
	}
	return n
}
