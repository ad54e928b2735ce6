// Package cmd wires the kwarta command tree.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kwarta/internal/api"
	"kwarta/internal/config"
	"kwarta/internal/log"
	"kwarta/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagServer  string
	flagTimeout int
)

var rootCmd = &cobra.Command{
	Use:   "kwarta",
	Short: "Terminal expense tracker",
	Long:  "Track expenses against your expense service: store entries, review monthly reports, chat with the assistant.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagServer, "server", "s", "", "Expense service base URL (overrides config and SERVER_BASE_URL)")
	rootCmd.PersistentFlags().IntVarP(&flagTimeout, "timeout", "t", 0, "Request timeout in seconds")
}

// loadConfig is the shared config path for every command: file, then env,
// then flags.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  config problem, using defaults: %v\n", err)
	}
	if flagServer != "" {
		cfg.Server.BaseURL = flagServer
	}
	if flagTimeout > 0 {
		cfg.Server.TimeoutSec = flagTimeout
	}
	return cfg
}

// newClient builds the API client CLI subcommands share.
func newClient(logger *log.Logger) (*api.Client, config.Config) {
	cfg := loadConfig()
	return api.New(cfg.Server.BaseURL, time.Duration(cfg.Server.TimeoutSec)*time.Second, logger), cfg
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := log.NewFile(filepath.Join(config.ConfigDir(), "kwarta.log"), "tui")

	app := tui.NewApp(cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
