package tui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guzus/enterastab/focus"
)

type screen int

const (
	screenMenu screen = iota
	screenForm
)

type switchScreenMsg struct {
	target screen
}

// MainModel routes between the form menu and the open form.
type MainModel struct {
	currentScreen screen
	width         int
	height        int
	presets       []Preset
	menu          MenuModel
	form          FormModel
}

func NewMainModel() MainModel {
	presets := Presets()
	return MainModel{
		currentScreen: screenMenu,
		presets:       presets,
		menu:          NewMenuModel(presets),
	}
}

// NewFormMainModel starts directly on preset index (0-based) using cfg
// instead of the preset's own configuration.
func NewFormMainModel(index int, cfg focus.Config) (MainModel, error) {
	m := NewMainModel()
	if index < 0 || index >= len(m.presets) {
		return MainModel{}, fmt.Errorf("no form %d (have 1-%d)", index+1, len(m.presets))
	}
	form, err := NewFormModel(m.presets[index], cfg)
	if err != nil {
		return MainModel{}, err
	}
	m.menu.cursor = index
	m.form = form
	m.currentScreen = screenForm
	return m, nil
}

func (m MainModel) Init() tea.Cmd {
	if m.currentScreen == screenForm {
		return m.form.Init()
	}
	return m.menu.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu, _ = m.menu.Update(msg)
		if m.currentScreen == screenForm {
			m.form, _ = m.form.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case openFormMsg:
		p := m.presets[msg.index]
		form, err := NewFormModel(p, p.Config)
		if err != nil {
			m.menu.err = err.Error()
			return m, nil
		}
		log.Printf("opened form %q", p.Title)
		m.menu.err = ""
		form, _ = form.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.form = form
		m.currentScreen = screenForm
		return m, m.form.Init()

	case switchScreenMsg:
		m.currentScreen = msg.target
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case screenMenu:
		m.menu, cmd = m.menu.Update(msg)
	case screenForm:
		m.form, cmd = m.form.Update(msg)
	}

	return m, cmd
}

func (m MainModel) View() string {
	switch m.currentScreen {
	case screenMenu:
		return m.menu.View()
	case screenForm:
		return m.form.View()
	default:
		return ""
	}
}
