package tui

import (
	"strings"
	"time"

	"kwarta/internal/api"
	"kwarta/internal/config"
	"kwarta/internal/dashboard"
	"kwarta/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues collects first-run answers before they are written to config.
type setupValues struct {
	serverURL string
	theme     string
}

// newSetupForm builds the first-run wizard shown when no config file exists.
func newSetupForm(vals *setupValues) *huh.Form {
	vals.serverURL = config.DefaultConfig().Server.BaseURL
	vals.theme = theme.Active.Name

	themeOptions := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOptions[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Expense service URL").
				Description("Where your expense data lives. SERVER_BASE_URL overrides this.").
				Value(&vals.serverURL),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&vals.theme),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// applySetup persists the wizard answers and rebuilds the client against
// the chosen server. Save errors are best-effort: the session continues
// with the chosen values either way.
func (a *App) applySetup() {
	url := strings.TrimRight(strings.TrimSpace(a.setupVals.serverURL), "/")
	if url == "" {
		url = config.DefaultBaseURL
	}

	a.cfg.Server.BaseURL = url
	a.cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(a.cfg.Appearance.Theme)

	if err := config.Save(a.cfg); err != nil {
		a.log.Error("saving config", "err", err)
	}

	a.client = api.New(url, time.Duration(a.cfg.Server.TimeoutSec)*time.Second, a.log)
	a.refresher = dashboard.New(a.client)
}
