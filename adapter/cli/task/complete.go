package task

import (
	"fmt"

	"github.com/felixgeelhaar/tascora/adapter/cli"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Mark a task as completed",
	Long: `Mark a task as completed. Completing an already-completed task is a
no-op and succeeds.`,
	Aliases: []string{"done"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CompleteTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		t, err := app.CompleteTaskHandler.Handle(cmd.Context(), commands.CompleteTaskCommand{TaskID: id})
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		fmt.Printf("Task completed: %s\n", t.Title())
		return nil
	},
}
