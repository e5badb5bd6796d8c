package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type openFormMsg struct {
	index int
}

// MenuModel lists the demo forms.
type MenuModel struct {
	width   int
	height  int
	presets []Preset
	cursor  int
	help    help.Model
	err     string
}

func NewMenuModel(presets []Preset) MenuModel {
	return MenuModel{presets: presets, help: help.New()}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, menuKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, menuKeys.Down):
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}

		case key.Matches(msg, menuKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, menuKeys.Open):
			if len(m.presets) == 0 {
				return m, nil
			}
			return m, m.open(m.cursor)

		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			r := msg.Runes[0]
			if r >= '1' && r <= '9' && int(r-'1') < len(m.presets) {
				m.cursor = int(r - '1')
				return m, m.open(m.cursor)
			}
		}
	}

	return m, nil
}

func (m MenuModel) open(i int) tea.Cmd {
	return func() tea.Msg { return openFormMsg{index: i} }
}

func (m MenuModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuSelectedStyle.Render("e n t e r a s t a b"))
	b.WriteString("\n\n")
	for i, p := range m.presets {
		cursor := "  "
		style := menuNormalStyle
		if i == m.cursor {
			cursor = "> "
			style = menuSelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d. %s", cursor, i+1, p.Title)))
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString("\n" + errorMsgStyle.Render("Error: "+m.err) + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView(menuKeys.ShortHelp()))

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		b.String(),
	)
}
