package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/tui/components"
	"github.com/budgettech/streamsaver/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-18s", label)) + valueStyle.Render(value) + "\n"
	}

	tier := fmt.Sprintf("free (%d subscriptions)", a.cfg.General.FreeLimit)
	if a.cfg.General.Premium {
		tier = "premium (unlimited)"
	}

	general := row("Currency", a.cfg.General.CurrencySymbol) +
		row("Decimal comma", fmt.Sprintf("%v", a.cfg.General.DecimalComma)) +
		row("Tier", tier) +
		row("Theme", a.cfg.Appearance.Theme)

	sync := row("Account", "not signed in (guest mode)")
	if a.account != "" {
		sync = row("Account", a.account)
	}
	if url := config.GetSupabaseURL(a.cfg); url != "" {
		sync += row("Project", url)
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("General", strings.TrimRight(general, "\n"), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Sync", strings.TrimRight(sync, "\n"), cw))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
		Render("  Edit settings with `streamsaver setup` or in " + config.ConfigPath()))
	return b.String()
}
