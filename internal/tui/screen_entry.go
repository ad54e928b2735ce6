package tui

import (
	"kwarta/internal/session"
	"kwarta/internal/tui/components"
	"kwarta/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// entryState tracks the cursor on the signed-out entry screen.
type entryState struct {
	cursor int
}

var entryItems = []components.MenuItem{
	{Label: "Login", Key: 'l'},
	{Label: "Register", Key: 'r'},
}

func (a App) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.entry.cursor < len(entryItems)-1 {
			a.entry.cursor++
		}
		return a, nil
	case "k", "up":
		if a.entry.cursor > 0 {
			a.entry.cursor--
		}
		return a, nil
	case "l":
		return a.gotoLogin()
	case "r":
		return a.gotoRegister()
	case "enter":
		if a.entry.cursor == 0 {
			return a.gotoLogin()
		}
		return a.gotoRegister()
	}
	return a, nil
}

func (a App) gotoLogin() (tea.Model, tea.Cmd) {
	a.login = newAuthForm(false)
	a.sess.SetScreen(session.ScreenLogin)
	return a, a.login.focusCmd()
}

func (a App) gotoRegister() (tea.Model, tea.Cmd) {
	a.register = newAuthForm(true)
	a.sess.SetScreen(session.ScreenRegister)
	return a, a.register.focusCmd()
}

func (a App) viewEntry() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := titleStyle.Render("◈ Expense Tracker") + "\n" +
		subtitleStyle.Render("Track what the month costs you") + "\n\n" +
		components.Menu(entryItems, a.entry.cursor)

	return "\n\n" + components.ContentCard("", body, 44)
}
