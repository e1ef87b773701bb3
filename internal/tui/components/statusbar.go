package components

import (
	"strings"

	"hucha/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the
// left, the latest flash message (action feedback or error) on the right.
func RenderStatusBar(width int, hints, flash string, flashIsErr bool) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	if hints == "" {
		left = " [?]help  [q]uit"
	}

	right := ""
	if flash != "" {
		msgStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		if flashIsErr {
			msgStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		right = msgStyle.Render(flash) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return barStyle.Render(left + strings.Repeat(" ", padding) + right)
}
