package components

import (
	"fmt"

	"github.com/theirongolddev/billdue/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: keybinding hints on the
// left, person counts on the right.
func RenderStatusBar(width, total, unpaid int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [a]dd  [p]aid  [d]elete  [?]help  [q]uit"
	right := ""
	if total > 0 {
		right = fmt.Sprintf("%d tracked, %d unpaid ", total, unpaid)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
