// Package tui implements the interactive expense-tracker client as a
// Bubble Tea program. The screen shown is a pure function of the session's
// (LoggedIn, Screen) pair; every user action mutates the session
// synchronously and is followed by exactly one render pass.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kwarta/internal/api"
	"kwarta/internal/config"
	"kwarta/internal/dashboard"
	"kwarta/internal/log"
	"kwarta/internal/session"
	"kwarta/internal/tui/components"
	"kwarta/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// User-facing copy. The store/auth messages match the service's established
// wording; tests and users depend on them.
const (
	msgLoginSuccess   = "Logged in successfully."
	msgLoginFailed    = "Failed to login. Username or password may be incorrect."
	msgRegisterOK     = "User registered successfully."
	msgRegisterFailed = "Failed to register. Username may already exist."
	msgStoreSuccess   = "Expenses stored to database."
	msgStoreFailed    = "Something went wrong. Failed to log expenses into database."
	msgUnknownError   = "Something went wrong."
)

const (
	minTerminalWidth = 60
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	sess      *session.Session
	cfg       config.Config
	client    *api.Client
	refresher *dashboard.Refresher
	log       *log.Logger

	width    int
	height   int
	showHelp bool

	// Transient status line; cleared on the next action.
	flash    string
	flashErr bool

	// Per-screen state
	entry    entryState
	login    authFormState
	register authFormState
	form     expenseFormState
	home     homeState
	history  historyState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp wires the config and session into a fresh TUI model.
func NewApp(cfg config.Config, logger *log.Logger) App {
	sess := session.New()

	client := api.New(cfg.Server.BaseURL, time.Duration(cfg.Server.TimeoutSec)*time.Second, logger)
	theme.SetActive(cfg.Appearance.Theme)

	return App{
		sess:      sess,
		cfg:       cfg,
		client:    client,
		refresher: dashboard.New(client),
		log:       logger,
		login:     newAuthForm(false),
		register:  newAuthForm(true),
		form:      newExpenseForm(),
		needSetup: !config.Exists(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals)
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model. All remote calls happen inline: an action
// runs to completion (bounded by the client timeout) before the next render,
// so mutations from one action are fully applied before another dispatches.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		if key == "?" && !a.typing() {
			a.showHelp = true
			return a, nil
		}

		a.clearFlash()
		return a.updateScreen(msg)
	}

	// Forward non-key messages (cursor blinks) to the setup form
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a.updateScreenMsg(msg)
}

// typing reports whether the active screen currently owns a focused text
// input, in which case printable keys must not be treated as shortcuts.
func (a App) typing() bool {
	if a.sess.LoggedIn {
		switch a.sess.Screen {
		case session.ScreenExpenseForm:
			return a.form.typing()
		case session.ScreenHome:
			return a.home.chatFocus
		}
		return false
	}
	switch a.sess.Screen {
	case session.ScreenLogin:
		return a.login.typing()
	case session.ScreenRegister:
		return a.register.typing()
	}
	return false
}

// updateScreen dispatches a key to the active screen's handler. The
// dispatch mirrors the transition diagram: entry branches to the auth
// screens, auth success lands on home, home fans out to the expense form
// and history, and both return to home.
func (a App) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !a.sess.LoggedIn {
		switch a.sess.Screen {
		case session.ScreenLogin:
			return a.updateLogin(msg)
		case session.ScreenRegister:
			return a.updateRegister(msg)
		default:
			return a.updateEntry(msg)
		}
	}

	switch a.sess.Screen {
	case session.ScreenExpenseForm:
		return a.updateExpenseForm(msg)
	case session.ScreenHistory:
		return a.updateHistory(msg)
	default:
		return a.updateHome(msg)
	}
}

// updateScreenMsg forwards non-key messages (blinks, ticks) to whichever
// screen holds a text input.
func (a App) updateScreenMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if !a.sess.LoggedIn {
		switch a.sess.Screen {
		case session.ScreenLogin:
			a.login, cmd = a.login.forward(msg)
		case session.ScreenRegister:
			a.register, cmd = a.register.forward(msg)
		}
		return a, cmd
	}
	switch a.sess.Screen {
	case session.ScreenExpenseForm:
		a.form, cmd = a.form.forward(msg)
	case session.ScreenHome:
		a.home.chatInput, cmd = a.home.chatInput.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model. Screen selection reads nothing but the
// session's logged-in flag and screen id.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  kwarta needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	body := a.screenView(a.sess.LoggedIn, a.sess.Screen)
	return a.frame(body)
}

// screenView is the pure screen dispatch: one screen per (loggedIn, screen)
// pair, nothing else consulted.
func (a App) screenView(loggedIn bool, screen session.Screen) string {
	if !loggedIn {
		switch screen {
		case session.ScreenLogin:
			return a.viewLogin()
		case session.ScreenRegister:
			return a.viewRegister()
		default:
			return a.viewEntry()
		}
	}

	switch screen {
	case session.ScreenExpenseForm:
		return a.viewExpenseForm()
	case session.ScreenHistory:
		return a.viewHistory()
	default:
		return a.viewHome()
	}
}

// frame stacks the screen body above the status bar and fills the terminal.
func (a App) frame(body string) string {
	t := theme.Active

	user := ""
	if a.sess.LoggedIn {
		user = a.sess.User.DisplayName
	}
	statusBar := components.RenderStatusBar(a.width, a.flash, a.flashErr, user)

	contentH := a.height - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	content := lipgloss.Place(a.width, contentH, lipgloss.Center, lipgloss.Top, body,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"j k / ↑ ↓", "Move between fields and menu items"},
		{"Tab", "Next field"},
		{"Enter", "Confirm / submit"},
		{"Esc", "Back"},
		{"?", "Toggle help"},
		{"q", "Quit (outside text fields)"},
	}

	body := titleStyle.Render("Keyboard Shortcuts") + "\n\n"
	for _, bind := range bindings {
		body += fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}
	body += "\n" + descStyle.Render("Press any key to close")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(body), lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Flash + error mapping ──────────────────────────────────────

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

func (a *App) clearFlash() {
	a.flash = ""
	a.flashErr = false
}

// failFlash converts a client error into its visible message: connection
// failures verbatim, server rejections with the action message, anything
// else logged and shown generically.
func (a *App) failFlash(actionMsg string, err error) {
	var srvErr *api.ServerError
	switch {
	case errors.Is(err, api.ErrConnection):
		a.setFlash(api.ErrConnection.Error(), true)
	case errors.As(err, &srvErr):
		a.setFlash(actionMsg, true)
	default:
		a.log.Error("unexpected failure", "err", err)
		a.setFlash(msgUnknownError, true)
	}
}

// refreshDashboard re-derives the monthly view after a mutating action.
func (a *App) refreshDashboard() {
	if err := a.refresher.Refresh(context.Background(), a.sess); err != nil {
		a.failFlash(msgUnknownError, err)
	}
}
