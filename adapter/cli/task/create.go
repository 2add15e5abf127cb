package task

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/tascora/adapter/cli"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/commands"
	"github.com/spf13/cobra"
)

var (
	priority    string
	description string
	category    string
	dueDate     string
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new task",
	Long: `Create a new task with a title and optional properties.

Examples:
  tascora task create "Complete project report"
  tascora task create "Review PR" -p high
  tascora task create "Write docs" --priority medium --category work --due 2026-09-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		createCmd := commands.CreateTaskCommand{
			Title:       args[0],
			Description: description,
			Priority:    priority,
			Category:    category,
		}

		if dueDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", dueDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid due date format (use YYYY-MM-DD): %w", err)
			}
			// End of day, so a date given today is not already in the past
			parsed = parsed.Add(24*time.Hour - time.Second)
			createCmd.DueDate = &parsed
		}

		created, err := app.CreateTaskHandler.Handle(cmd.Context(), createCmd)
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Printf("Task created: %s\n", created.ID())
		fmt.Printf("  title: %s\n", created.Title())
		fmt.Printf("  priority: %s\n", created.Priority())
		if category != "" {
			fmt.Printf("  category: %s\n", category)
		}
		if createCmd.DueDate != nil {
			fmt.Printf("  due: %s\n", createCmd.DueDate.Format("2006-01-02"))
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&priority, "priority", "p", "", "task priority (low, medium, high)")
	createCmd.Flags().StringVar(&description, "description", "", "task description")
	createCmd.Flags().StringVarP(&category, "category", "c", "", "task category")
	createCmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
}
