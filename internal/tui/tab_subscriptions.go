package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/tui/components"
	"github.com/budgettech/streamsaver/internal/tui/theme"
)

func (a App) renderSubscriptionsTab(cw int) string {
	t := theme.Active

	if len(a.subs) == 0 {
		return "\n" + lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("  No subscriptions yet. Add one with `streamsaver add`.")
	}

	waste, hasWaste := engine.BiggestWaste(a.subs)

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	wasteStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	nameW := cw - 52
	if nameW < 16 {
		nameW = 16
	}

	var b strings.Builder
	b.WriteString(" " + headerStyle.Render(fmt.Sprintf("%-*s %-14s %10s %6s %10s",
		nameW, "Subscription", "Category", "Monthly", "Uses", "Per use")))
	b.WriteString("\n")

	for i, s := range a.subs {
		name := s.Name
		if s.Icon != "" {
			name = s.Icon + " " + name
		}

		perUse := "—"
		if cpu, ok := engine.CostPerUse(s); ok {
			perUse = cli.FormatMoney(cpu)
		}

		line := fmt.Sprintf("%-*s %-14s %10s %6d %10s",
			nameW, truncStr(name, nameW),
			truncStr(s.Category, 14),
			cli.FormatMoney(engine.MonthlyCost(s)),
			s.MonthlyUses,
			perUse)

		style := rowStyle
		if i == a.subCursor {
			style = selStyle
		}
		b.WriteString(" " + style.Render(line))
		if hasWaste && s.ID == waste.ID {
			b.WriteString(" " + wasteStyle.Render("◂ waste"))
		}
		b.WriteString("\n")
	}

	totalLine := fmt.Sprintf("Total: %s/month · %s/year",
		cli.FormatMoney(engine.TotalMonthly(a.subs)),
		cli.FormatMoney(engine.TotalMonthly(a.subs).Mul(twelve)))
	b.WriteString("\n" + components.ContentCard("", lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(totalLine), cw))

	return b.String()
}
