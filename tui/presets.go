package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guzus/enterastab/focus"
)

// formField is one labeled element of a demo form, in layout order.
type formField struct {
	label string
	el    focus.Element
}

// Preset is one of the demo forms.
type Preset struct {
	Title       string
	Description string
	Config      focus.Config
	fields      func(submit func() tea.Cmd) []formField
}

type formSubmittedMsg struct{}

func submitCmd() tea.Cmd {
	return func() tea.Msg { return formSubmittedMsg{} }
}

func withConfig(mod func(*focus.Config)) focus.Config {
	cfg := focus.DefaultConfig()
	mod(&cfg)
	return cfg
}

// Presets returns the demo forms in menu order.
func Presets() []Preset {
	return []Preset{
		{
			Title: "Default",
			Description: "Enter moves to the next field in the order the fields are listed. " +
				"On the **Submit** button Enter presses it.",
			Config: focus.DefaultConfig(),
			fields: func(submit func() tea.Cmd) []formField {
				return []formField{
					{"Name", focus.NewInput("Jane Doe", nil)},
					{"Email", focus.NewInput("jane@example.com", nil)},
					{"Notes", focus.NewTextArea("anything else", nil)},
					{"", focus.NewButton("Submit", submit, nil)},
				}
			},
		},
		{
			Title: "Tab index",
			Description: "Order follows the `tabindex` attribute of each field instead of " +
				"the layout. Fields without one count as `0`.",
			Config: withConfig(func(c *focus.Config) { c.UseTabIndex = true }),
			fields: func(submit func() tea.Cmd) []formField {
				return []formField{
					{"Third", focus.NewInput("tabindex 2", focus.Attrs{focus.AttrTabIndex: "2"})},
					{"First", focus.NewInput("tabindex 0", focus.Attrs{focus.AttrTabIndex: "0"})},
					{"Second", focus.NewInput("tabindex 1", focus.Attrs{focus.AttrTabIndex: "1"})},
					{"", focus.NewButton("Submit", submit, focus.Attrs{focus.AttrTabIndex: "3"})},
				}
			},
		},
		{
			Title: "Explicit actions",
			Description: "Action detection is off, so only elements marked with " +
				"`data-is-action` keep their native Enter. The unmarked **Skip** " +
				"button behaves like a field.",
			Config: withConfig(func(c *focus.Config) { c.AutoDetectAction = false }),
			fields: func(submit func() tea.Cmd) []formField {
				return []formField{
					{"Name", focus.NewInput("Jane Doe", nil)},
					{"", focus.NewButton("Skip", nil, nil)},
					{"Email", focus.NewInput("jane@example.com", nil)},
					{"", focus.NewLink("Submit", submit, focus.Attrs{focus.AttrIsAction: ""})},
				}
			},
		},
		{
			Title: "Cyclic",
			Description: "Enter on the last field wraps around to the first one.",
			Config:      withConfig(func(c *focus.Config) { c.Cyclic = true }),
			fields: func(submit func() tea.Cmd) []formField {
				return []formField{
					{"Name", focus.NewInput("Jane Doe", nil)},
					{"Email", focus.NewInput("jane@example.com", nil)},
					{"Phone", focus.NewInput("+1 555 0100", nil)},
				}
			},
		},
		{
			Title: "Text area: new line",
			Description: "Enter inside the text area inserts a new line. " +
				"Everywhere else it moves to the next field.",
			Config: withConfig(func(c *focus.Config) { c.TextAreaStrategy = focus.StrategyNewLine }),
			fields: messageFields,
		},
		{
			Title: "Text area: ctrl+enter",
			Description: "Ctrl+Enter (`ctrl+j`) inside the text area inserts a new line. " +
				"A plain Enter moves to the next field.",
			Config: withConfig(func(c *focus.Config) { c.TextAreaStrategy = focus.StrategyCtrlEnter }),
			fields: messageFields,
		},
	}
}

func messageFields(submit func() tea.Cmd) []formField {
	return []formField{
		{"Subject", focus.NewInput("hello", nil)},
		{"Message", focus.NewTextArea("write something", nil)},
		{"", focus.NewButton("Send", submit, nil)},
	}
}
