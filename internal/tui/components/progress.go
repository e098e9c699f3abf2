// Package components holds small reusable render helpers for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goalweek/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a goal progress bar for a 0-100 percentage.
func ProgressBar(pct, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := pct * width / 100
	if filled > width {
		filled = width
	}

	// Color shifts as the goal gets closer to done
	var barColor lipgloss.Color
	switch {
	case pct >= 100:
		barColor = t.Green
	case pct >= 50:
		barColor = t.Accent
	default:
		barColor = t.Cyan
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + " " + pctStyle.Render(fmt.Sprintf("%3d%%", pct))
}
