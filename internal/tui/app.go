// Package tui provides the interactive Bubble Tea dashboard for streamsaver.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
	"github.com/budgettech/streamsaver/internal/store"
	"github.com/budgettech/streamsaver/internal/tui/components"
	"github.com/budgettech/streamsaver/internal/tui/theme"
)

// DataLoadedMsg is sent when the store read finishes.
type DataLoadedMsg struct {
	Subs      []model.Subscription
	Profile   model.Profile
	Challenge model.Challenge
	Err       error
}

// CheckinDoneMsg is sent after a check-in attempt completes.
type CheckinDoneMsg struct {
	Challenge model.Challenge
	Profile   model.Profile
	Result    engine.CheckInResult
	Err       error
}

// App is the root Bubble Tea model.
type App struct {
	st      store.Store
	cfg     config.Config
	account string

	// Data
	subs    []model.Subscription
	profile model.Profile
	ch      model.Challenge
	loaded  bool
	loadErr error

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	subCursor  int
	tmplCursor int
	flash      string

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model over an already-opened store.
func NewApp(st store.Store, cfg config.Config, account string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		st:      st,
		cfg:     cfg,
		account: account,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(a.st), a.spinner.Tick)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.flash = ""

		switch key {
		case "j", "down":
			a.moveCursor(1)
			return a, nil
		case "k", "up":
			a.moveCursor(-1)
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "r":
			return a, loadDataCmd(a.st)
		case "enter":
			if a.activeTab == tabChallenge && a.ch.Active {
				return a, checkinCmd(a.st, a.ch)
			}
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.subs = msg.Subs
			a.profile = msg.Profile
			a.ch = msg.Challenge
			a.clampCursors()
		}
		return a, nil

	case CheckinDoneMsg:
		if msg.Err != nil {
			a.flash = "check-in failed: " + msg.Err.Error()
			return a, nil
		}
		a.ch = msg.Challenge
		a.profile = msg.Profile
		switch msg.Result {
		case engine.CheckInAlreadyDone:
			a.flash = "Already checked in today"
		case engine.CheckInContinued:
			a.flash = fmt.Sprintf("Streak extended to %d days!", a.ch.StreakDays)
		case engine.CheckInReset:
			a.flash = "Streak restarted at day 1"
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

const (
	tabOverview = iota
	tabSubscriptions
	tabChallenge
	tabTemplates
	tabSettings
)

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabSubscriptions:
		a.subCursor += delta
	case tabTemplates:
		a.tmplCursor += delta
	}
	a.clampCursors()
}

func (a *App) clampCursors() {
	if a.subCursor > len(a.subs)-1 {
		a.subCursor = len(a.subs) - 1
	}
	if a.subCursor < 0 {
		a.subCursor = 0
	}
	if a.tmplCursor > len(config.Templates)-1 {
		a.tmplCursor = len(config.Templates) - 1
	}
	if a.tmplCursor < 0 {
		a.tmplCursor = 0
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  streamsaver needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return fmt.Sprintf("\n  Failed to load data: %v\n\n  [q]uit\n", a.loadErr)
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	card := cardStyle.Render(
		logoStyle.Render("◈ streamsaver") +
			subtitleStyle.Render(" · Subscription Budget Tracker") +
			"\n\n" + a.spinner.View() + subtitleStyle.Render(" Loading your data..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o s c t x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"Enter", "Check in (Challenge tab)"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.account)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabSubscriptions:
		content = a.renderSubscriptionsTab(cw)
	case tabChallenge:
		content = a.renderChallengeTab(cw)
	case tabTemplates:
		content = a.renderTemplatesTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	if a.flash != "" {
		flashStyle := lipgloss.NewStyle().Foreground(theme.Active.GreenBright).Bold(true)
		content = flashStyle.Render("  "+a.flash) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func loadDataCmd(st store.Store) tea.Cmd {
	return func() tea.Msg {
		subs, err := st.Subscriptions()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		profile, err := st.Profile()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		ch, err := st.Challenge()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		return DataLoadedMsg{Subs: subs, Profile: profile, Challenge: ch}
	}
}

func checkinCmd(st store.Store, ch model.Challenge) tea.Cmd {
	return func() tea.Msg {
		ch, result := engine.CheckIn(ch, time.Now())
		if result == engine.CheckInAlreadyDone {
			profile, err := st.Profile()
			return CheckinDoneMsg{Challenge: ch, Profile: profile, Result: result, Err: err}
		}

		if err := st.SaveChallenge(ch); err != nil {
			return CheckinDoneMsg{Err: err}
		}
		profile, err := st.Profile()
		if err != nil {
			return CheckinDoneMsg{Err: err}
		}
		profile = engine.AwardXP(profile, model.ActionCheckin)
		if err := st.SaveProfile(profile); err != nil {
			return CheckinDoneMsg{Err: err}
		}
		return CheckinDoneMsg{Challenge: ch, Profile: profile, Result: result}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
