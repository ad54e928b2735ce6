package cmd

import (
	"context"
	"fmt"
	"time"

	"kwarta/internal/cli"
	"kwarta/internal/dashboard"
	"kwarta/internal/log"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the current month's expenses and summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	client, _ := newClient(log.NewStderr("summary"))

	start, end := dashboard.MonthRange(time.Now())
	report, err := client.MonthlyData(context.Background(), start, end)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle(fmt.Sprintf("Expenses · %s", start.Format("January 2006"))))
	fmt.Println()

	if len(report.Rows) == 0 && report.Summary == "" {
		fmt.Println("  No data available for this month.")
		return nil
	}

	if report.Summary != "" {
		fmt.Printf("  %s\n\n", report.Summary)
	}

	fmt.Print(cli.RenderTable(cli.ExpenseTable("", report.Rows)))

	series := dashboard.DailySeries(report.Rows, start, end)
	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Total.InexactFloat64()
	}
	fmt.Printf("\n  daily  %s\n", cli.RenderSparkline(values))

	return nil
}
