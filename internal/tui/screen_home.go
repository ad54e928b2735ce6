package tui

import (
	"context"
	"strings"

	"kwarta/internal/chat"
	"kwarta/internal/cli"
	"kwarta/internal/session"
	"kwarta/internal/tui/components"
	"kwarta/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Keep the transcript pane scannable; older turns scroll away.
const maxVisibleTurns = 8

// homeState tracks the home screen menu and chat pane.
type homeState struct {
	cursor    int
	chatFocus bool
	chatInput textinput.Model
}

var homeItems = []components.MenuItem{
	{Label: "Add Expenses", Key: 'a'},
	{Label: "Show Expense History", Key: 'h'},
	{Label: "Sign out", Key: 'o'},
}

func newHomeState() homeState {
	ti := textinput.New()
	ti.Placeholder = "Say something"
	ti.CharLimit = 512
	ti.Width = 44
	return homeState{chatInput: ti}
}

func (a App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.home.chatFocus {
		switch key {
		case "esc":
			a.home.chatFocus = false
			a.home.chatInput.Blur()
			return a, nil
		case "enter":
			return a.submitChat()
		}
		var cmd tea.Cmd
		a.home.chatInput, cmd = a.home.chatInput.Update(msg)
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.home.cursor < len(homeItems)-1 {
			a.home.cursor++
		}
		return a, nil
	case "k", "up":
		if a.home.cursor > 0 {
			a.home.cursor--
		}
		return a, nil
	case "a":
		return a.gotoExpenseForm()
	case "h":
		return a.gotoHistory()
	case "o":
		return a.signOut()
	case "c", "/":
		a.home.chatFocus = true
		a.home.chatInput.Focus()
		return a, a.home.chatInput.Cursor.BlinkCmd()
	case "enter":
		switch a.home.cursor {
		case 0:
			return a.gotoExpenseForm()
		case 1:
			return a.gotoHistory()
		default:
			return a.signOut()
		}
	}
	return a, nil
}

func (a App) gotoExpenseForm() (tea.Model, tea.Cmd) {
	a.form = newExpenseForm()
	a.sess.SetScreen(session.ScreenExpenseForm)
	return a, nil
}

func (a App) gotoHistory() (tea.Model, tea.Cmd) {
	rows, err := a.client.History(context.Background(), a.sess.User.Username)
	if err != nil {
		a.failFlash("Failed to fetch expense history.", err)
		return a, nil
	}
	a.sess.HistoryRows = rows
	a.history = historyState{}
	a.sess.SetScreen(session.ScreenHistory)
	return a, nil
}

// signOut resets the whole session, returning to the entry screen with
// identity, summary, and transcript cleared.
func (a App) signOut() (tea.Model, tea.Cmd) {
	a.sess.SignOut()
	a.entry = entryState{}
	a.login = newAuthForm(false)
	a.register = newAuthForm(true)
	a.home = newHomeState()
	return a, nil
}

// submitChat runs one request/response exchange. The user turn always
// appends; the assistant turn appends only when a reply arrives.
func (a App) submitChat() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(a.home.chatInput.Value())
	if text == "" {
		return a, nil
	}

	chat.Exchange(context.Background(), a.client, a.sess.User.Username, &a.sess.Transcript, text)
	a.home.chatInput.SetValue("")
	return a, nil
}

func (a App) viewHome() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	cardW := a.width - 4
	if cardW > 72 {
		cardW = 72
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Expense Tracker"))
	b.WriteString("\n\n")

	// Summary card: sticky summary text plus this month's chart
	summary := a.sess.Summary
	if summary == "" {
		summary = mutedStyle.Render("No summary yet.")
	}
	if a.sess.MonthlyRows == nil {
		summary += "\n" + mutedStyle.Render("No expenses recorded this month.")
	}
	b.WriteString(components.ContentCard("This month", summary+a.renderChart(cardW), cardW))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("", components.Menu(homeItems, a.home.cursor), cardW))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Assistant", a.renderTranscript(cardW), cardW))

	return b.String()
}

func (a App) renderChart(cardW int) string {
	if len(a.sess.Chart) == 0 {
		return ""
	}

	values := make([]float64, len(a.sess.Chart))
	labels := make([]string, len(a.sess.Chart))
	for i, p := range a.sess.Chart {
		values[i] = p.Total.InexactFloat64()
		labels[i] = cli.FormatMonthDay(p.Day)
	}

	return "\n\n" + components.BarChart(values, labels, components.CardInnerWidth(cardW), 6)
}

func (a App) renderTranscript(cardW int) string {
	t := theme.Active

	userStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	botStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	turns := a.sess.Transcript
	if len(turns) > maxVisibleTurns {
		turns = turns[len(turns)-maxVisibleTurns:]
	}

	var b strings.Builder
	for _, turn := range turns {
		if turn.Role == chat.RoleUser {
			b.WriteString(userStyle.Render("you: " + turn.Content))
		} else {
			b.WriteString(botStyle.Render("bot: " + turn.Content))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.home.chatInput.View())
	if !a.home.chatFocus {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("[c] chat · [a]dd · [h]istory · sign [o]ut"))
	}
	return b.String()
}
