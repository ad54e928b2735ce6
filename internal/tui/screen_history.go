package tui

import (
	"strings"

	"kwarta/internal/cli"
	"kwarta/internal/session"
	"kwarta/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyState tracks scrolling through the history table.
type historyState struct {
	scroll int
}

func (a App) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.sess.SetScreen(session.ScreenHome)
		return a, nil
	case "j", "down":
		a.history.scroll++
		return a, nil
	case "k", "up":
		if a.history.scroll > 0 {
			a.history.scroll--
		}
		return a, nil
	case "g":
		a.history.scroll = 0
		return a, nil
	}
	return a, nil
}

func (a App) viewHistory() string {
	t := theme.Active
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(a.sess.HistoryRows) == 0 {
		return "\n\n" + mutedStyle.Render("No expenses stored yet.") + "\n\n" +
			hintStyle.Render("Esc back")
	}

	table := cli.RenderTable(cli.ExpenseTable("Expense History", a.sess.HistoryRows))

	// Clamp scroll so the last page stays visible
	lines := strings.Split(table, "\n")
	visible := a.height - 4
	if visible < minContentHeight {
		visible = minContentHeight
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := a.history.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < len(lines) {
		lines = lines[scroll:]
	}
	if len(lines) > visible {
		lines = lines[:visible]
	}

	return strings.Join(lines, "\n") + "\n" + hintStyle.Render("j/k scroll · Esc back")
}
