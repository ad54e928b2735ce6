// Package session holds the client's per-run mutable state: authentication,
// the active screen, and the cached dashboard data. The state is an explicit
// object owned by the TUI; every mutation is visible to the next render pass.
package session

import (
	"time"

	"github.com/shopspring/decimal"

	"kwarta/internal/chat"
	"kwarta/internal/expense"
)

// Screen identifies which full-page view is active. Exactly one screen is
// active at a time and rendering is a pure function of (LoggedIn, Screen).
type Screen int

const (
	ScreenEntry Screen = iota
	ScreenLogin
	ScreenRegister
	ScreenHome
	ScreenExpenseForm
	ScreenHistory
)

func (s Screen) String() string {
	switch s {
	case ScreenEntry:
		return "entry"
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenHome:
		return "home"
	case ScreenExpenseForm:
		return "expense_form"
	case ScreenHistory:
		return "history"
	default:
		return "entry"
	}
}

// User is the authenticated identity.
type User struct {
	Username    string
	DisplayName string
}

// DaySpend is one point of the monthly chart: the summed expenses of a
// single calendar day. Days without expenses appear with a zero total.
type DaySpend struct {
	Day   time.Time
	Total decimal.Decimal
}

// Session is the single shared mutable state of the client. It is accessed
// only by the UI goroutine; no locking by construction.
type Session struct {
	LoggedIn bool
	Screen   Screen
	User     User

	// Dashboard cache, replaced wholesale on each refresh. MonthlyRows is
	// nil when the server reported no data for the current month. Summary
	// is sticky: once populated it is only cleared by SignOut.
	Summary     string
	MonthlyRows []expense.Row
	Chart       []DaySpend

	// History cache for the history screen.
	HistoryRows []expense.Row

	Transcript []chat.Turn
}

// New returns a session at its defaults: signed out, entry screen. The zero
// value already is that state; New exists so construction reads as intent.
func New() *Session {
	return &Session{Screen: ScreenEntry}
}

// SetScreen activates a screen. Pure mutation; the caller triggers the
// following render.
func (s *Session) SetScreen(screen Screen) {
	s.Screen = screen
}

// SignIn marks the session authenticated. Navigation is the caller's
// responsibility; the store stays free of control-flow policy.
func (s *Session) SignIn(username, displayName string) {
	s.LoggedIn = true
	s.User = User{Username: username, DisplayName: displayName}
}

// SignOut tears the session down to defaults and routes to the entry screen.
func (s *Session) SignOut() {
	*s = Session{Screen: ScreenEntry}
}

// EnsureGreeting lazily seeds the transcript with the assistant greeting.
func (s *Session) EnsureGreeting() {
	if len(s.Transcript) == 0 {
		s.Transcript = append(s.Transcript, chat.Greeting(s.User.DisplayName))
	}
}
