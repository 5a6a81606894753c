package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/tui/components"
	"github.com/budgettech/streamsaver/internal/tui/theme"
)

var twelve = decimal.NewFromInt(12)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	if len(a.subs) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return "\n" + emptyStyle.Render("  No subscriptions yet. Add one with `streamsaver add`.")
	}

	total := engine.TotalMonthly(a.subs)

	budgetValue := "not set"
	budgetDetail := ""
	if a.profile.MonthlyBudget.IsPositive() {
		budgetValue = cli.FormatMoney(a.profile.MonthlyBudget)
		remaining := a.profile.MonthlyBudget.Sub(total)
		if remaining.IsNegative() {
			budgetDetail = cli.FormatMoney(remaining.Abs()) + " over"
		} else {
			budgetDetail = cli.FormatMoney(remaining) + " left"
		}
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Monthly spend", cli.FormatMoney(total), fmt.Sprintf("%d subscriptions", len(a.subs))},
		{"Yearly", cli.FormatMoney(total.Mul(twelve)), ""},
		{"Budget", budgetValue, budgetDetail},
	}
	out := components.MetricCardRow(cards, cw)

	if a.profile.MonthlyBudget.IsPositive() {
		used, _ := total.Div(a.profile.MonthlyBudget).Float64()
		out += "\n " + components.BudgetBar("Budget used", used, 12, cw-24)
	}

	if waste, ok := engine.BiggestWaste(a.subs); ok {
		detail := "never used — cancelling pays bonus XP"
		if cpu, defined := engine.CostPerUse(waste); defined {
			detail = cli.FormatMoney(cpu) + " per use"
		}
		body := lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render(waste.Name) +
			"\n" + lipgloss.NewStyle().Foreground(t.TextMuted).Render(detail)
		out += "\n" + components.ContentCard("Biggest waste", body, cw)
	}

	level, toNext := engine.LevelFromXP(a.profile.XP)
	levelStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	out += "\n " + levelStyle.Render(fmt.Sprintf("Lv %d", level)) +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(
			fmt.Sprintf("  %d XP · %d to next level", a.profile.XP, toNext))

	return out
}
