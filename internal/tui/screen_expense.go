package tui

import (
	"context"
	"strings"
	"time"

	"kwarta/internal/api"
	"kwarta/internal/expense"
	"kwarta/internal/session"
	"kwarta/internal/tui/components"
	"kwarta/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	expFieldCategory = iota
	expFieldDescription
	expFieldAmount
	expFieldDate
	expFieldCount // sentinel
)

const dateLayout = "2006-01-02"

// earliestExpenseDate bounds the date field, matching the service's history
// horizon.
var earliestExpenseDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)

// expenseFormState holds the add-expense form fields.
type expenseFormState struct {
	focus       int
	category    int // index into expense.Categories
	description textinput.Model
	amount      textinput.Model
	date        textinput.Model
}

func newExpenseForm() expenseFormState {
	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 256
	desc.Width = 32

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Width = 32

	date := textinput.New()
	date.Placeholder = dateLayout
	date.CharLimit = len(dateLayout)
	date.Width = 32
	date.SetValue(time.Now().Format(dateLayout))

	return expenseFormState{
		description: desc,
		amount:      amount,
		date:        date,
	}
}

func (f expenseFormState) typing() bool {
	return f.focus != expFieldCategory
}

func (f *expenseFormState) setFocus(idx int) {
	if idx < 0 {
		idx = expFieldCount - 1
	}
	if idx >= expFieldCount {
		idx = 0
	}
	f.focus = idx

	f.description.Blur()
	f.amount.Blur()
	f.date.Blur()
	switch idx {
	case expFieldDescription:
		f.description.Focus()
	case expFieldAmount:
		f.amount.Focus()
	case expFieldDate:
		f.date.Focus()
	}
}

func (f expenseFormState) forward(msg tea.Msg) (expenseFormState, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case expFieldDescription:
		f.description, cmd = f.description.Update(msg)
	case expFieldAmount:
		f.amount, cmd = f.amount.Update(msg)
	case expFieldDate:
		f.date, cmd = f.date.Update(msg)
	}
	return f, cmd
}

func (a App) updateExpenseForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Exit always returns home through a refresh
		return a.exitExpenseForm()
	case "tab", "down":
		a.form.setFocus(a.form.focus + 1)
		return a, nil
	case "shift+tab", "up":
		a.form.setFocus(a.form.focus - 1)
		return a, nil
	case "left":
		if a.form.focus == expFieldCategory && a.form.category > 0 {
			a.form.category--
		}
		return a, nil
	case "right":
		if a.form.focus == expFieldCategory && a.form.category < len(expense.Categories)-1 {
			a.form.category++
		}
		return a, nil
	case "enter":
		if a.form.focus != expFieldDate {
			a.form.setFocus(a.form.focus + 1)
			return a, nil
		}
		return a.submitExpense()
	case "ctrl+s":
		return a.submitExpense()
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.forward(msg)
	return a, cmd
}

func (a App) exitExpenseForm() (tea.Model, tea.Cmd) {
	a.form = newExpenseForm()
	a.refreshDashboard()
	a.sess.SetScreen(session.ScreenHome)
	return a, nil
}

// submitExpense validates locally first; no request is sent when a check
// fails. A stored expense routes home through a dashboard refresh.
func (a App) submitExpense() (tea.Model, tea.Cmd) {
	category := expense.Categories[a.form.category]
	description := a.form.description.Value()
	amount := strings.TrimSpace(a.form.amount.Value())

	if err := expense.ValidateEntryForm(category, description, amount); err != nil {
		a.setFlash(err.Error(), true)
		return a, nil
	}

	day, err := time.ParseInLocation(dateLayout, a.form.date.Value(), time.Local)
	if err != nil || day.Before(earliestExpenseDate) || day.After(time.Now()) {
		a.setFlash("Invalid date. Use "+dateLayout+", not in the future.", true)
		return a, nil
	}

	req := api.StoreExpenseRequest{
		Username:    a.sess.User.Username,
		Category:    category.String(),
		Description: description,
		Amount:      amount,
		Date:        expense.DateMillis(day),
	}
	if err := a.client.StoreExpense(context.Background(), req); err != nil {
		a.failFlash(msgStoreFailed, err)
		return a, nil
	}

	a.form = newExpenseForm()
	a.refreshDashboard()
	a.sess.SetScreen(session.ScreenHome)
	if !a.flashErr {
		a.setFlash(msgStoreSuccess, false)
	}
	return a, nil
}

func (a App) viewExpenseForm() string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	activeLabel := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	catStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	if a.form.category == 0 {
		catStyle = lipgloss.NewStyle().Foreground(t.TextDim)
	}

	label := func(idx int, text string) string {
		if a.form.focus == idx {
			return activeLabel.Render("▸ " + text)
		}
		return labelStyle.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(label(expFieldCategory, "CATEGORY"))
	b.WriteString("\n  ")
	b.WriteString(catStyle.Render("◂ " + expense.Categories[a.form.category].String() + " ▸"))
	b.WriteString("\n\n")

	b.WriteString(label(expFieldDescription, "DESCRIPTION"))
	b.WriteString("\n  ")
	b.WriteString(a.form.description.View())
	b.WriteString("\n\n")

	b.WriteString(label(expFieldAmount, "AMOUNT (Php)"))
	b.WriteString("\n  ")
	b.WriteString(a.form.amount.View())
	b.WriteString("\n\n")

	b.WriteString(label(expFieldDate, "DATE"))
	b.WriteString("\n  ")
	b.WriteString(a.form.date.View())
	b.WriteString("\n\n")

	b.WriteString(hintStyle.Render("Enter store · Esc exit · ◂ ▸ pick category"))

	return "\n" + components.ContentCard("Add Expenses", b.String(), 52)
}
