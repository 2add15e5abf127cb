package task

import (
	"fmt"

	"github.com/felixgeelhaar/tascora/adapter/cli"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/queries"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search tasks by title or description",
	Long: `Search tasks whose title or description contains the term,
case-insensitive. An empty term lists all tasks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SearchTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		var term string
		if len(args) > 0 {
			term = args[0]
		}

		tasks, err := app.SearchTasksHandler.Handle(cmd.Context(), queries.SearchTasksQuery{Term: term})
		if err != nil {
			return fmt.Errorf("failed to search tasks: %w", err)
		}

		printTaskTable(tasks)
		return nil
	},
}
