// Package task contains the task command group for the CLI.
package task

import (
	"github.com/spf13/cobra"
)

// Cmd is the task command group
var Cmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Create, list, complete, and manage your tasks.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(completeCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(searchCmd)
	Cmd.AddCommand(statsCmd)
}
