package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors
var (
	colorBlue    = lipgloss.Color("#1DA1F2")
	colorLightFg = lipgloss.Color("#E1E8ED")
	colorMuted   = lipgloss.Color("#657786")
	colorRed     = lipgloss.Color("#E0245E")
	colorGreen   = lipgloss.Color("#17BF63")
	colorWhite   = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	errorMsgStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	successMsgStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	menuNormalStyle = lipgloss.NewStyle().
			Foreground(colorLightFg)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	formFocusedLabelStyle = formLabelStyle.
				Foreground(colorBlue).
				Bold(true)

	configStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// markdownStyle is the glamour style used for preset descriptions. Empty
// means auto-detect from the terminal background.
var markdownStyle string

// SetPlainOutput disables colors for lipgloss and glamour output.
func SetPlainOutput(plain bool) {
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
		markdownStyle = "notty"
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	markdownStyle = ""
}
