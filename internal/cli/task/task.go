// Package task holds the cli commands for tasks, their status and notes
//
// e.g., uptask task ...
package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(NoteCmd())

	return cmd
}

// addProjectFlag registers the --project flag every task command needs
func addProjectFlag(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "Project ID the task belongs to (required)")
	cli.MarkRequired(cmd, "project")
}
