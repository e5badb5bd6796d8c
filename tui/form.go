package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guzus/enterastab/focus"
)

// FormModel renders one demo form and routes its keys through a focus.Cycle.
type FormModel struct {
	width  int
	height int
	preset Preset
	fields []formField
	cycle  *focus.Cycle
	help   help.Model
	status string
}

// NewFormModel builds the fields of preset and initializes a cycle over them
// with cfg.
func NewFormModel(preset Preset, cfg focus.Config) (FormModel, error) {
	fields := preset.fields(submitCmd)
	els := make([]focus.Element, len(fields))
	for i, f := range fields {
		els[i] = f.el
	}

	c := focus.NewCycle(els...).
		SetUseTabIndex(cfg.UseTabIndex).
		SetAutoDetectAction(cfg.AutoDetectAction).
		SetCyclic(cfg.Cyclic)
	if _, err := c.SetTextAreaStrategy(cfg.TextAreaStrategy); err != nil {
		return FormModel{}, fmt.Errorf("preset %q: %w", preset.Title, err)
	}
	c.Init()
	c.Focus(0)

	return FormModel{
		preset: preset,
		fields: fields,
		cycle:  c,
		help:   help.New(),
	}, nil
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case formSubmittedMsg:
		m.status = m.summary()
		log.Printf("submitted %q: %s", m.preset.Title, m.status)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, formKeys.Back) {
			return m, func() tea.Msg { return switchScreenMsg{target: screenMenu} }
		}
		before := m.cycle.Focused()
		cmd := m.cycle.Update(msg)
		if after := m.cycle.Focused(); after != before {
			log.Printf("focus %s -> %s", m.label(before), m.label(after))
		}
		return m, cmd
	}

	// Forward non-key messages (e.g. blink) to every element
	return m, m.cycle.Update(msg)
}

// focusedLabel returns the label of the focused field, or "" when nothing is
// focused.
func (m FormModel) focusedLabel() string {
	el := m.cycle.Focused()
	if el == nil {
		return ""
	}
	return m.label(el)
}

func (m FormModel) label(el focus.Element) string {
	if el == nil {
		return "<none>"
	}
	for _, f := range m.fields {
		if f.el != el {
			continue
		}
		if f.label != "" {
			return f.label
		}
		if b, ok := el.(*focus.Button); ok {
			return b.Label
		}
	}
	return el.Role().String()
}

type valuer interface {
	Value() string
}

func (m FormModel) summary() string {
	var parts []string
	for _, f := range m.fields {
		v, ok := f.el.(valuer)
		if !ok || f.label == "" {
			continue
		}
		val := strings.ReplaceAll(v.Value(), "\n", `\n`)
		parts = append(parts, fmt.Sprintf("%s=%q", strings.ToLower(f.label), val))
	}
	if len(parts) == 0 {
		return "submitted"
	}
	return "submitted " + strings.Join(parts, " ")
}

func (m FormModel) configLine() string {
	cfg := m.cycle.Config()
	return fmt.Sprintf("useTabIndex=%t  autoDetectAction=%t  cyclic=%t  textAreaStrategy=%q",
		cfg.UseTabIndex, cfg.AutoDetectAction, cfg.Cyclic, cfg.TextAreaStrategy)
}

func (m FormModel) View() string {
	if m.width == 0 {
		return ""
	}

	header := headerStyle.Width(m.width).Render(m.preset.Title)

	var b strings.Builder
	b.WriteString(renderMarkdown(m.preset.Description, m.width-2))
	b.WriteString("\n  " + configStyle.Render(m.configLine()) + "\n\n")

	for _, f := range m.fields {
		style := formLabelStyle
		if f.el.Focused() {
			style = formFocusedLabelStyle
		}
		label := f.label
		if v, ok := f.el.Attr(focus.AttrTabIndex); ok && m.cycle.Config().UseTabIndex {
			label = fmt.Sprintf("%s [%s]", label, v)
		}
		var view string
		if vw, ok := f.el.(interface{ View() string }); ok {
			view = vw.View()
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", style.Render(label), " ", view))
		b.WriteString("\n\n")
	}

	if m.status != "" {
		b.WriteString("  " + successMsgStyle.Render(m.status) + "\n")
	}

	footer := statusBarStyle.Width(m.width).Render(m.help.ShortHelpView(formKeys.ShortHelp()))

	contentHeight := m.height - 2 // header + footer
	if contentHeight < 1 {
		contentHeight = 1
	}
	content := lipgloss.NewStyle().
		Height(contentHeight).
		Width(m.width).
		Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
