package task

import (
	"fmt"

	"github.com/felixgeelhaar/tascora/adapter/cli"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.TaskStatisticsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		stats, err := app.TaskStatisticsHandler.Handle(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to compute statistics: %w", err)
		}

		fmt.Println("Task statistics")
		fmt.Printf("  total:      %d\n", stats.Total)
		fmt.Printf("  completed:  %d\n", stats.Completed)
		fmt.Printf("  pending:    %d\n", stats.Pending)
		fmt.Printf("  overdue:    %d\n", stats.Overdue)
		fmt.Printf("  completion: %.1f%%\n", stats.CompletionRate)

		return nil
	},
}
