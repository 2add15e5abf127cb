// Package cli provides the cobra command tree for tascora.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger *slog.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tascora",
	Short: "Tascora - task tracker",
	Long: `Tascora is a single-store task tracker with an HTTP/JSON API and a
command line interface. Tasks carry a priority, an optional due date, and a
free-form category, and can be filtered, searched, and summarised.`,
	SilenceUsage: true,
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// GetLogger returns the CLI logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
