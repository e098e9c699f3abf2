package components

import (
	"github.com/theirongolddev/goalweek/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. notice carries the most
// recent validation or error message and is shown in place of the key hints.
func RenderStatusBar(width int, notice string, noticeIsError bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [a]dd goal  [l]og  [+]quick  [[/]]week  [?]help  [q]uit"
	if notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(t.Yellow)
		if noticeIsError {
			noticeStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		return style.Render(" ") + noticeStyle.Render(notice)
	}

	// Pad to full width
	padding := width - lipgloss.Width(left)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}

	return style.Render(bar)
}
