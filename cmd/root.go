package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli/auth"
	"github.com/thenoetrevino/uptask/internal/cli/board"
	"github.com/thenoetrevino/uptask/internal/cli/profile"
	"github.com/thenoetrevino/uptask/internal/cli/project"
	"github.com/thenoetrevino/uptask/internal/cli/task"
	"github.com/thenoetrevino/uptask/internal/cli/team"
)

// NewRootCmd builds the uptask command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uptask",
		Short: "UpTask - projects, tasks and teams from the terminal",
		Long: `UpTask is a client for the UpTask project management API. Manage
projects, tasks, notes and team members from the command line, or open
an interactive board with 'uptask board'.

Every command accepts --json for machine readable output and --quiet to
print only ids.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(auth.AuthCmd())
	rootCmd.AddCommand(profile.ProfileCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(team.TeamCmd())
	rootCmd.AddCommand(board.BoardCmd())

	return rootCmd
}

// Execute runs the command tree
func Execute() error {
	return NewRootCmd().Execute()
}
