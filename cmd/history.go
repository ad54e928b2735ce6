package cmd

import (
	"context"
	"errors"
	"fmt"

	"kwarta/internal/cli"
	"kwarta/internal/log"

	"github.com/spf13/cobra"
)

var flagHistoryUser string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the full expense history for a user",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&flagHistoryUser, "user", "u", "", "Username whose history to fetch")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	username := flagHistoryUser
	if username == "" {
		cfg := loadConfig()
		username = cfg.General.DefaultUsername
	}
	if username == "" {
		return errors.New("no username: pass --user or set default_username in config")
	}

	client, _ := newClient(log.NewStderr("history"))

	rows, err := client.History(context.Background(), username)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("  No expenses stored yet.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.ExpenseTable(fmt.Sprintf("Expense History · %s", username), rows)))
	return nil
}
