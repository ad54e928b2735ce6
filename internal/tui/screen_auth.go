package tui

import (
	"context"
	"strings"

	"kwarta/internal/session"
	"kwarta/internal/tui/components"
	"kwarta/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field order inside an auth form. The name field only exists on the
// register variant.
const (
	authFieldName = iota
	authFieldUsername
	authFieldPassword
)

// authFormState holds the text inputs of the login or register screen.
type authFormState struct {
	register bool
	inputs   []textinput.Model
	focus    int
}

func newAuthForm(register bool) authFormState {
	labels := []string{"Username", "Password"}
	if register {
		labels = []string{"Name", "Username", "Password"}
	}

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 128
		ti.Width = 32
		if label == "Password" {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '*'
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return authFormState{register: register, inputs: inputs}
}

func (f authFormState) typing() bool { return true }

func (f *authFormState) setFocus(idx int) {
	if idx < 0 {
		idx = len(f.inputs) - 1
	}
	if idx >= len(f.inputs) {
		idx = 0
	}
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = idx
	f.inputs[idx].Focus()
}

func (f authFormState) focusCmd() tea.Cmd {
	return f.inputs[f.focus].Cursor.BlinkCmd()
}

func (f authFormState) lastFocused() bool {
	return f.focus == len(f.inputs)-1
}

func (f authFormState) value(idx int) string {
	if !f.register {
		idx-- // no name field on login
	}
	if idx < 0 || idx >= len(f.inputs) {
		return ""
	}
	return f.inputs[idx].Value()
}

func (f authFormState) forward(msg tea.Msg) (authFormState, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// ─── Login ──────────────────────────────────────────────────────

func (a App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.sess.SetScreen(session.ScreenEntry)
		return a, nil
	case "ctrl+r":
		return a.gotoRegister()
	case "tab", "down":
		a.login.setFocus(a.login.focus + 1)
		return a, a.login.focusCmd()
	case "shift+tab", "up":
		a.login.setFocus(a.login.focus - 1)
		return a, a.login.focusCmd()
	case "enter":
		if !a.login.lastFocused() {
			a.login.setFocus(a.login.focus + 1)
			return a, a.login.focusCmd()
		}
		return a.submitLogin()
	}

	var cmd tea.Cmd
	a.login, cmd = a.login.forward(msg)
	return a, cmd
}

func (a App) submitLogin() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(a.login.value(authFieldUsername))
	password := a.login.value(authFieldPassword)
	if username == "" || password == "" {
		a.setFlash(msgLoginFailed, true)
		return a, nil
	}

	name, err := a.client.Login(context.Background(), username, password)
	if err != nil {
		a.failFlash(msgLoginFailed, err)
		return a, nil
	}

	return a.enterHome(username, name, msgLoginSuccess)
}

func (a App) viewLogin() string {
	return "\n\n" + a.renderAuthCard("Login", a.login,
		"Enter to submit · Esc back · Ctrl+R register")
}

// ─── Register ───────────────────────────────────────────────────

func (a App) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.sess.SetScreen(session.ScreenEntry)
		return a, nil
	case "ctrl+l":
		return a.gotoLogin()
	case "tab", "down":
		a.register.setFocus(a.register.focus + 1)
		return a, a.register.focusCmd()
	case "shift+tab", "up":
		a.register.setFocus(a.register.focus - 1)
		return a, a.register.focusCmd()
	case "enter":
		if !a.register.lastFocused() {
			a.register.setFocus(a.register.focus + 1)
			return a, a.register.focusCmd()
		}
		return a.submitRegister()
	}

	var cmd tea.Cmd
	a.register, cmd = a.register.forward(msg)
	return a, cmd
}

func (a App) submitRegister() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(a.register.value(authFieldName))
	username := strings.TrimSpace(a.register.value(authFieldUsername))
	password := a.register.value(authFieldPassword)
	if username == "" || password == "" {
		a.setFlash(msgRegisterFailed, true)
		return a, nil
	}

	displayName, err := a.client.Register(context.Background(), name, username, password)
	if err != nil {
		a.failFlash(msgRegisterFailed, err)
		return a, nil
	}

	return a.enterHome(username, displayName, msgRegisterOK)
}

func (a App) viewRegister() string {
	return "\n\n" + a.renderAuthCard("Create an account", a.register,
		"Enter to submit · Esc back · Ctrl+L login")
}

// ─── Shared ─────────────────────────────────────────────────────

// enterHome finalizes a successful authentication: session sign-in, lazy
// chat greeting, dashboard refresh, then the home screen.
func (a App) enterHome(username, displayName, flash string) (tea.Model, tea.Cmd) {
	a.sess.SignIn(username, displayName)
	a.sess.EnsureGreeting()
	a.refreshDashboard()
	a.sess.SetScreen(session.ScreenHome)
	a.home = newHomeState()
	// A failed refresh already raised its error; don't mask it
	if !a.flashErr {
		a.setFlash(flash, false)
	}
	return a, nil
}

func (a App) renderAuthCard(title string, form authFormState, hint string) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, in := range form.inputs {
		b.WriteString(labelStyle.Render(in.Placeholder))
		b.WriteString("\n")
		b.WriteString(in.View())
		if i < len(form.inputs)-1 {
			b.WriteString("\n\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(hint))

	return components.ContentCard(title, b.String(), 48)
}
