package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/tui/components"
	"github.com/budgettech/streamsaver/internal/tui/theme"
)

func (a App) renderTemplatesTab(cw int) string {
	t := theme.Active

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, tmpl := range config.Templates {
		style := rowStyle
		marker := "  "
		if i == a.tmplCursor {
			style = selStyle
			marker = "▸ "
		}
		b.WriteString(" " + style.Render(fmt.Sprintf("%s%-36s %d items", marker, tmpl.Title, len(tmpl.Items))))
		b.WriteString("\n")
	}

	tmpl := config.Templates[a.tmplCursor]

	body := lipgloss.NewStyle().Foreground(t.AccentBright).Render(tmpl.Hook) + "\n\n"
	for _, line := range tmpl.Script {
		body += mutedStyle.Render(line) + "\n"
	}
	body += "\n"
	for _, item := range tmpl.Items {
		body += mutedStyle.Render(fmt.Sprintf("· %s (%d uses/month)", item.Name, item.MonthlyUses)) + "\n"
	}
	body += dimStyle.Render(strings.Join(tmpl.Hashtags, " ")) + "\n"
	body += dimStyle.Render("Import with: streamsaver template import " + tmpl.ID)

	b.WriteString("\n" + components.ContentCard(tmpl.Title, body, cw))
	return b.String()
}
