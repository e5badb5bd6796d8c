package focus

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input is a single-line text field.
type Input struct {
	textinput.Model
	Attrs
	Disabled bool
}

// NewInput returns an unfocused text field.
func NewInput(placeholder string, attrs Attrs) *Input {
	t := textinput.New()
	t.Placeholder = placeholder
	t.CharLimit = 256
	return &Input{Model: t, Attrs: attrs}
}

func (i *Input) Role() Role { return RoleField }

func (i *Input) CanFocus() bool { return !i.Disabled }

func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.Model, cmd = i.Model.Update(msg)
	return cmd
}

// TextArea is a multi-line text field.
type TextArea struct {
	textarea.Model
	Attrs
}

// NewTextArea returns an unfocused text area.
func NewTextArea(placeholder string, attrs Attrs) *TextArea {
	t := textarea.New()
	t.Placeholder = placeholder
	t.ShowLineNumbers = false
	t.SetHeight(3)
	return &TextArea{Model: t, Attrs: attrs}
}

func (t *TextArea) Role() Role { return RoleTextArea }

// InsertNewline inserts a line break at the cursor.
func (t *TextArea) InsertNewline() { t.Model.InsertString("\n") }

func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return cmd
}

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E1E8ED")).
			Background(lipgloss.Color("#657786")).
			Padding(0, 2)

	buttonFocusedStyle = buttonStyle.
				Background(lipgloss.Color("#1DA1F2")).
				Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1DA1F2")).
			Underline(true)

	linkFocusedStyle = linkStyle.
				Bold(true).
				Reverse(true)
)

// Button is a pressable widget. Its native Enter runs OnPress. Buttons made
// with NewLink report RoleLink and are not auto-detected as actions.
type Button struct {
	Label   string
	OnPress func() tea.Cmd
	Attrs

	Style        lipgloss.Style
	FocusedStyle lipgloss.Style
	Press        key.Binding

	role    Role
	focused bool
}

// NewButton returns a button.
func NewButton(label string, onPress func() tea.Cmd, attrs Attrs) *Button {
	return &Button{
		Label:        label,
		OnPress:      onPress,
		Attrs:        attrs,
		Style:        buttonStyle,
		FocusedStyle: buttonFocusedStyle,
		Press:        key.NewBinding(key.WithKeys("enter", " ")),
		role:         RoleButton,
	}
}

// NewLink returns a link. Only Enter follows it.
func NewLink(label string, onPress func() tea.Cmd, attrs Attrs) *Button {
	return &Button{
		Label:        label,
		OnPress:      onPress,
		Attrs:        attrs,
		Style:        linkStyle,
		FocusedStyle: linkFocusedStyle,
		Press:        key.NewBinding(key.WithKeys("enter")),
		role:         RoleLink,
	}
}

func (b *Button) Role() Role { return b.role }

func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

func (b *Button) Blur() { b.focused = false }

func (b *Button) Focused() bool { return b.focused }

func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if !b.focused || b.OnPress == nil {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, b.Press) {
		return b.OnPress()
	}
	return nil
}

func (b *Button) View() string {
	if b.focused {
		return b.FocusedStyle.Render(b.Label)
	}
	return b.Style.Render(b.Label)
}
