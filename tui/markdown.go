package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

func renderMarkdown(content string, width int) string {
	opt := glamour.WithAutoStyle()
	if markdownStyle != "" {
		opt = glamour.WithStandardStyle(markdownStyle)
	}
	r, err := glamour.NewTermRenderer(
		opt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return configStyle.Width(width).Render(content)
	}
	out, err := r.Render(content)
	if err != nil {
		return configStyle.Width(width).Render(content)
	}
	return strings.TrimRight(out, "\n")
}
