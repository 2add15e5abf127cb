package task

import (
	"fmt"

	"github.com/felixgeelhaar/tascora/adapter/cli"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/queries"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		t, err := app.GetTaskHandler.Handle(cmd.Context(), queries.GetTaskQuery{TaskID: id})
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}

		fmt.Printf("Task %s\n", t.ID)
		fmt.Printf("  title: %s\n", t.Title)
		if t.Description != "" {
			fmt.Printf("  description: %s\n", t.Description)
		}
		fmt.Printf("  priority: %s\n", t.Priority)
		if t.Category != "" {
			fmt.Printf("  category: %s\n", t.Category)
		}
		if t.DueDate != nil {
			fmt.Printf("  due: %s\n", t.DueDate.Format("2006-01-02 15:04"))
		}
		fmt.Printf("  completed: %t\n", t.Completed)
		if t.Overdue {
			fmt.Println("  overdue: yes")
		}
		fmt.Printf("  created: %s\n", t.CreatedAt.Format("2006-01-02 15:04"))

		return nil
	},
}
