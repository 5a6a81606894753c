package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/tui/components"
	"github.com/budgettech/streamsaver/internal/tui/theme"
)

func (a App) renderChallengeTab(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if !a.ch.Active {
		var b strings.Builder
		b.WriteString("\n" + mutedStyle.Render("  No challenge running. Available challenges:") + "\n\n")
		for _, c := range config.ChallengePresets {
			body := mutedStyle.Render(c.Description) + "\n" +
				lipgloss.NewStyle().Foreground(t.TextDim).Render(
					fmt.Sprintf("%d days · streamsaver challenge start %s", c.Days, c.ID))
			b.WriteString(components.ContentCard(c.Title, body, cw))
			b.WriteString("\n")
		}
		return b.String()
	}

	now := time.Now()
	day := engine.CurrentDay(a.ch, now)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	var b strings.Builder
	body := titleStyle.Render(fmt.Sprintf("Day %d of %d", day, a.ch.DurationDays)) + "\n" +
		streakStyle.Render("Streak: "+cli.FormatStreak(a.ch.StreakDays))
	b.WriteString(components.ContentCard(a.ch.Title, body, cw))

	if frac, ok := engine.Progress(a.ch, now); ok {
		b.WriteString("\n " + components.ProgressBar(frac, cw-12))
	}

	b.WriteString("\n\n" + mutedStyle.Render("  Press Enter to check in for today."))
	return b.String()
}
