package task

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/tascora/adapter/cli"
	"github.com/felixgeelhaar/tascora/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tascora/internal/tasks/domain/value_objects"
	"github.com/spf13/cobra"
)

var (
	filterStatus   string
	filterPriority string
	filterCategory string
	overdue        bool
	dueToday       bool
	sortBy         string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks with optional filtering and sorting.

Filter Options:
  --status      Filter by completion (pending, completed)
  --priority    Filter by priority (low, medium, high)
  --category    Filter by category (case-insensitive)
  --overdue     Show only overdue tasks
  --due-today   Show only tasks due today

Sort Options:
  --sort        Sort by field (priority, due_date)

Examples:
  tascora task list                     # All tasks
  tascora task list --status pending    # Incomplete tasks
  tascora task list --priority high     # Only high priority tasks
  tascora task list --overdue           # Overdue tasks
  tascora task list --sort priority     # High to low, oldest first on ties`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		query := queries.ListTasksQuery{
			Category: filterCategory,
			Overdue:  overdue,
			DueToday: dueToday,
			SortBy:   sortBy,
		}

		switch strings.ToLower(filterStatus) {
		case "":
		case "pending":
			completed := false
			query.Completed = &completed
		case "completed", "done":
			completed := true
			query.Completed = &completed
		default:
			return fmt.Errorf("invalid status %q (use pending or completed)", filterStatus)
		}

		if filterPriority != "" {
			p, err := value_objects.ParsePriority(filterPriority)
			if err != nil {
				return fmt.Errorf("invalid priority %q (use low, medium, or high)", filterPriority)
			}
			query.Priority = &p
		}

		tasks, err := app.ListTasksHandler.Handle(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		printTaskTable(tasks)
		return nil
	},
}

func printTaskTable(tasks []queries.TaskDTO) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	for _, t := range tasks {
		marker := " "
		if t.Completed {
			marker = "x"
		}
		line := fmt.Sprintf("[%s] %s  %s (%s)", marker, t.ID, t.Title, t.Priority)
		if t.Category != "" {
			line += "  #" + t.Category
		}
		if t.DueDate != nil {
			line += "  due " + t.DueDate.Format("2006-01-02")
			if t.Overdue {
				line += " (overdue)"
			}
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d task(s)\n", len(tasks))
}

func init() {
	listCmd.Flags().StringVar(&filterStatus, "status", "", "filter by completion (pending, completed)")
	listCmd.Flags().StringVar(&filterPriority, "priority", "", "filter by priority (low, medium, high)")
	listCmd.Flags().StringVar(&filterCategory, "category", "", "filter by category")
	listCmd.Flags().BoolVar(&overdue, "overdue", false, "show only overdue tasks")
	listCmd.Flags().BoolVar(&dueToday, "due-today", false, "show only tasks due today")
	listCmd.Flags().StringVar(&sortBy, "sort", "", "sort by field (priority, due_date)")
}
