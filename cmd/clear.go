package cmd

import (
	"context"
	"fmt"

	"kwarta/internal/log"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear-db",
	Short: "Delete every stored expense on the server",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	if !flagClearYes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Clear database contents?").
				Description("This deletes every stored expense for every user. There is no undo.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	client, _ := newClient(log.NewStderr("clear-db"))
	if err := client.ClearDatabase(context.Background()); err != nil {
		return err
	}

	fmt.Println("  Database cleared.")
	return nil
}
