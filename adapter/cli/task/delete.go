package task

import (
	"fmt"

	"github.com/felixgeelhaar/tascora/adapter/cli"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Short:   "Delete a task",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.DeleteTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		if err := app.DeleteTaskHandler.Handle(cmd.Context(), commands.DeleteTaskCommand{TaskID: id}); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		fmt.Printf("Task deleted: %s\n", id)
		return nil
	},
}
