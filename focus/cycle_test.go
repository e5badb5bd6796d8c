package focus

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeElement records focus calls without any rendering.
type fakeElement struct {
	name     string
	role     Role
	attrs    Attrs
	focused  bool
	disabled bool
	newlines int
	keys     []string
}

func field(name string) *fakeElement { return &fakeElement{name: name, role: RoleField} }

func (f *fakeElement) Focus() tea.Cmd {
	f.focused = true
	return nil
}
func (f *fakeElement) Blur()                           { f.focused = false }
func (f *fakeElement) Focused() bool                   { return f.focused }
func (f *fakeElement) Role() Role                      { return f.role }
func (f *fakeElement) Attr(name string) (string, bool) { return f.attrs.Attr(name) }
func (f *fakeElement) CanFocus() bool                  { return !f.disabled }
func (f *fakeElement) InsertNewline()                  { f.newlines++ }
func (f *fakeElement) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		f.keys = append(f.keys, km.String())
	}
	return nil
}

var (
	enterKey     = tea.KeyMsg{Type: tea.KeyEnter}
	ctrlEnterKey = tea.KeyMsg{Type: tea.KeyCtrlJ}
)

func elements(els ...*fakeElement) []Element {
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}

func names(els []Element) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = el.(*fakeElement).name
	}
	return out
}

func focusedName(c *Cycle) string {
	el := c.Focused()
	if el == nil {
		return ""
	}
	return el.(*fakeElement).name
}

func TestDefaultConfig(t *testing.T) {
	c := NewCycle()
	got := c.Config()
	want := Config{AutoDetectAction: true, TextAreaStrategy: StrategyTab}
	if got != want {
		t.Fatalf("Config() = %+v, want %+v", got, want)
	}
}

func TestSettersChain(t *testing.T) {
	c := NewCycle().SetUseTabIndex(true).SetAutoDetectAction(false).SetCyclic(true)
	cfg := c.Config()
	if !cfg.UseTabIndex || cfg.AutoDetectAction || !cfg.Cyclic {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestSetTextAreaStrategy(t *testing.T) {
	c := NewCycle()
	if _, err := c.SetTextAreaStrategy(StrategyCtrlEnter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Config().TextAreaStrategy; got != StrategyCtrlEnter {
		t.Fatalf("strategy = %q, want %q", got, StrategyCtrlEnter)
	}

	_, err := c.SetTextAreaStrategy("bogus")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if got := c.Config().TextAreaStrategy; got != StrategyCtrlEnter {
		t.Errorf("strategy changed to %q after invalid value", got)
	}
}

func TestParseTextAreaStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    TextAreaStrategy
		wantErr bool
	}{
		{in: "tab", want: StrategyTab},
		{in: "new line", want: StrategyNewLine},
		{in: "ctrl+enter", want: StrategyCtrlEnter},
		{in: "newline", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTextAreaStrategy(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnterMovesThroughFields(t *testing.T) {
	a, b, c := field("a"), field("b"), field("c")
	cy := NewCycle(elements(a, b, c)...)
	cy.Init()
	cy.Focus(0)

	for _, want := range []string{"b", "c", "c"} {
		el := cy.Focused()
		ev := cy.Dispatch(el, enterKey)
		if !ev.DefaultPrevented() {
			t.Errorf("expected default prevented on %s", el.(*fakeElement).name)
		}
		if got := focusedName(cy); got != want {
			t.Fatalf("focused %q, want %q", got, want)
		}
	}
	if a.focused || b.focused {
		t.Error("expected previous elements to be blurred")
	}
}

func TestCyclicWrapsToFirst(t *testing.T) {
	a, b, c := field("a"), field("b"), field("c")
	cy := NewCycle(elements(a, b, c)...).SetCyclic(true)
	cy.Init()
	cy.Focus(2)

	cy.Dispatch(c, enterKey)
	if got := focusedName(cy); got != "a" {
		t.Fatalf("focused %q, want a", got)
	}
}

func TestCyclicLastActionDoesNotWrap(t *testing.T) {
	a := field("a")
	btn := &fakeElement{name: "submit", role: RoleButton}
	cy := NewCycle(elements(a, btn)...).SetCyclic(true)
	cy.Init()
	cy.Focus(1)

	ev := cy.Dispatch(btn, enterKey)
	if ev.DefaultPrevented() {
		t.Error("expected native Enter on the button")
	}
	if got := focusedName(cy); got != "submit" {
		t.Fatalf("focused %q, want submit", got)
	}
}

func TestNonEnterKeysPassThrough(t *testing.T) {
	a, b := field("a"), field("b")
	cy := NewCycle(elements(a, b)...)
	cy.Init()
	cy.Focus(0)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyTab},
		{Type: tea.KeyRunes, Runes: []rune{'x'}},
		{Type: tea.KeySpace},
	} {
		ev := cy.Dispatch(a, msg)
		if ev.DefaultPrevented() {
			t.Errorf("%q: expected default not prevented", msg.String())
		}
	}
	if got := focusedName(cy); got != "a" {
		t.Fatalf("focused %q, want a", got)
	}
}

func TestActionClassification(t *testing.T) {
	button := &fakeElement{role: RoleButton}
	link := &fakeElement{role: RoleLink}
	marked := &fakeElement{role: RoleField, attrs: Attrs{AttrIsAction: ""}}
	plain := &fakeElement{role: RoleField}

	tests := []struct {
		name       string
		autoDetect bool
		el         Element
		want       bool
	}{
		{name: "auto button", autoDetect: true, el: button, want: true},
		{name: "auto link", autoDetect: true, el: link, want: false},
		{name: "auto marked field", autoDetect: true, el: marked, want: false},
		{name: "auto plain", autoDetect: true, el: plain, want: false},
		{name: "manual button", autoDetect: false, el: button, want: false},
		{name: "manual marked field", autoDetect: false, el: marked, want: true},
		{name: "manual plain", autoDetect: false, el: plain, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCycle().SetAutoDetectAction(tt.autoDetect)
			if got := c.IsAction(tt.el); got != tt.want {
				t.Errorf("IsAction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActionElementKeepsNativeEnter(t *testing.T) {
	for _, autoDetect := range []bool{true, false} {
		a := field("a")
		btn := &fakeElement{name: "btn", role: RoleButton, attrs: Attrs{AttrIsAction: "true"}}
		b := field("b")
		cy := NewCycle(elements(a, btn, b)...).SetAutoDetectAction(autoDetect)
		cy.Init()
		cy.Focus(1)

		ev := cy.Dispatch(btn, enterKey)
		if ev.DefaultPrevented() {
			t.Errorf("autoDetect=%v: expected default not prevented", autoDetect)
		}
		if got := focusedName(cy); got != "btn" {
			t.Errorf("autoDetect=%v: focused %q, want btn", autoDetect, got)
		}
	}
}

func TestLinkIsNotAutoDetected(t *testing.T) {
	link := &fakeElement{name: "link", role: RoleLink}
	b := field("b")
	cy := NewCycle(elements(link, b)...)
	cy.Init()
	cy.Focus(0)

	ev := cy.Dispatch(link, enterKey)
	if !ev.DefaultPrevented() {
		t.Error("expected default prevented on link")
	}
	if got := focusedName(cy); got != "b" {
		t.Fatalf("focused %q, want b", got)
	}
}

func TestUseTabIndexOrdering(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		tabs  map[string]string
		want  []string
	}{
		{
			name:  "ascending",
			input: []string{"a", "b", "c"},
			tabs:  map[string]string{"a": "2", "b": "0", "c": "1"},
			want:  []string{"b", "c", "a"},
		},
		{
			name:  "missing is zero and ties are stable",
			input: []string{"a", "b", "c", "d"},
			tabs:  map[string]string{"a": "1", "c": "0"},
			want:  []string{"b", "c", "d", "a"},
		},
		{
			name:  "malformed values",
			input: []string{"a", "b", "c", "d"},
			tabs:  map[string]string{"a": "3px", "b": "x", "c": " 1 ", "d": "-1"},
			want:  []string{"d", "b", "c", "a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var els []*fakeElement
			for _, n := range tt.input {
				el := field(n)
				if v, ok := tt.tabs[n]; ok {
					el.attrs = Attrs{AttrTabIndex: v}
				}
				els = append(els, el)
			}
			cy := NewCycle(elements(els...)...).SetUseTabIndex(true)
			cy.Init()

			final := cy.Elements()
			got := names(final)
			if len(got) != len(tt.want) {
				t.Fatalf("order = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
				pos, ok := cy.Position(final[i])
				if !ok || pos != i {
					t.Errorf("Position(%s) = %d, %v; want %d", got[i], pos, ok, i)
				}
			}
		})
	}
}

func TestInputOrderWithoutTabIndex(t *testing.T) {
	a := &fakeElement{name: "a", attrs: Attrs{AttrTabIndex: "5"}}
	b := &fakeElement{name: "b", attrs: Attrs{AttrTabIndex: "1"}}
	cy := NewCycle(elements(a, b)...)
	cy.Init()

	got := names(cy.Elements())
	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("order = %v, want [a b]", got)
	}
}

func TestTabIndexFocusOrder(t *testing.T) {
	a := &fakeElement{name: "a", attrs: Attrs{AttrTabIndex: "1"}}
	b := &fakeElement{name: "b", attrs: Attrs{AttrTabIndex: "0"}}
	cy := NewCycle(elements(a, b)...).SetUseTabIndex(true)
	cy.Init()
	b.Focus()

	cy.Dispatch(b, enterKey)
	if got := focusedName(cy); got != "a" {
		t.Fatalf("focused %q, want a", got)
	}
}

func TestTextAreaStrategies(t *testing.T) {
	tests := []struct {
		name          string
		strategy      TextAreaStrategy
		msg           tea.KeyMsg
		wantPrevented bool
		wantFocus     string
		wantNewlines  int
	}{
		{name: "tab enter", strategy: StrategyTab, msg: enterKey, wantPrevented: true, wantFocus: "b"},
		{name: "new line enter", strategy: StrategyNewLine, msg: enterKey, wantPrevented: false, wantFocus: "notes"},
		{name: "new line ctrl+enter", strategy: StrategyNewLine, msg: ctrlEnterKey, wantPrevented: false, wantFocus: "notes"},
		{name: "ctrl+enter with ctrl", strategy: StrategyCtrlEnter, msg: ctrlEnterKey, wantPrevented: true, wantFocus: "notes", wantNewlines: 1},
		{name: "ctrl+enter plain", strategy: StrategyCtrlEnter, msg: enterKey, wantPrevented: true, wantFocus: "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &fakeElement{name: "notes", role: RoleTextArea}
			b := field("b")
			cy, err := NewCycle(elements(notes, b)...).SetTextAreaStrategy(tt.strategy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			cy.Init()
			cy.Focus(0)

			ev := cy.Dispatch(notes, tt.msg)
			if ev.DefaultPrevented() != tt.wantPrevented {
				t.Errorf("DefaultPrevented() = %v, want %v", ev.DefaultPrevented(), tt.wantPrevented)
			}
			if got := focusedName(cy); got != tt.wantFocus {
				t.Errorf("focused %q, want %q", got, tt.wantFocus)
			}
			if notes.newlines != tt.wantNewlines {
				t.Errorf("newlines = %d, want %d", notes.newlines, tt.wantNewlines)
			}
		})
	}
}

func TestCtrlEnterOnRegularFieldMovesFocus(t *testing.T) {
	a, b := field("a"), field("b")
	cy, _ := NewCycle(elements(a, b)...).SetTextAreaStrategy(StrategyCtrlEnter)
	cy.Init()
	cy.Focus(0)

	ev := cy.Dispatch(a, ctrlEnterKey)
	if !ev.DefaultPrevented() {
		t.Error("expected default prevented")
	}
	if got := focusedName(cy); got != "b" {
		t.Fatalf("focused %q, want b", got)
	}
}

func TestDisabledTargetIsNoop(t *testing.T) {
	a, b := field("a"), field("b")
	b.disabled = true
	cy := NewCycle(elements(a, b)...)
	cy.Init()
	cy.Focus(0)

	ev := cy.Dispatch(a, enterKey)
	if !ev.DefaultPrevented() {
		t.Error("expected default prevented")
	}
	if got := focusedName(cy); got != "a" {
		t.Fatalf("focused %q, want a", got)
	}
}

func TestDispatchBeforeInit(t *testing.T) {
	a, b := field("a"), field("b")
	cy := NewCycle(elements(a, b)...)
	a.Focus()

	ev := cy.Dispatch(a, enterKey)
	if ev.DefaultPrevented() {
		t.Error("expected no handlers before Init")
	}
	if _, ok := cy.Position(a); ok {
		t.Error("expected no position before Init")
	}
}

func TestInitTwiceDuplicatesHandlers(t *testing.T) {
	notes := &fakeElement{name: "notes", role: RoleTextArea}
	cy, _ := NewCycle(elements(notes, field("b"))...).SetTextAreaStrategy(StrategyCtrlEnter)
	cy.Init()
	cy.Init()
	notes.Focus()

	cy.Dispatch(notes, ctrlEnterKey)
	if notes.newlines != 2 {
		t.Fatalf("newlines = %d, want 2", notes.newlines)
	}
}

func TestConfigFrozenAtInit(t *testing.T) {
	a, b := field("a"), field("b")
	cy := NewCycle(elements(a, b)...)
	cy.Init()
	cy.SetCyclic(true)
	cy.Focus(1)

	cy.Dispatch(b, enterKey)
	if got := focusedName(cy); got != "b" {
		t.Fatalf("focused %q, want b", got)
	}
}

func TestUpdateForwardsOnlyNativeKeys(t *testing.T) {
	a := field("a")
	btn := &fakeElement{name: "btn", role: RoleButton}
	cy := NewCycle(elements(a, btn)...)
	cy.Init()
	cy.Focus(0)

	cy.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	cy.Update(enterKey)
	if len(a.keys) != 1 || a.keys[0] != "x" {
		t.Fatalf("input received %v, want [x]", a.keys)
	}
	if focusedName(cy) != "btn" {
		t.Fatalf("focused %q, want btn", focusedName(cy))
	}

	cy.Update(enterKey)
	if len(btn.keys) != 1 || btn.keys[0] != "enter" {
		t.Fatalf("button received %v, want [enter]", btn.keys)
	}
}

func TestUpdateWithoutFocus(t *testing.T) {
	a := field("a")
	cy := NewCycle(elements(a)...)
	cy.Init()

	if cmd := cy.Update(enterKey); cmd != nil {
		t.Error("expected nil command without a focused element")
	}
	if len(a.keys) != 0 {
		t.Errorf("unexpected keys %v", a.keys)
	}
}

func TestFocusOutOfRange(t *testing.T) {
	a := field("a")
	cy := NewCycle(elements(a)...)
	cy.Init()

	if cmd := cy.Focus(3); cmd != nil {
		t.Error("expected nil command")
	}
	if cy.Focused() != nil {
		t.Error("expected nothing focused")
	}
}
