package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/budgettech/streamsaver/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. account is the signed-in
// email, empty in guest mode.
func RenderStatusBar(width int, account string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := "guest mode "
	if account != "" {
		right = "synced: " + account + " "
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
