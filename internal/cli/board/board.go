// Package board holds the command that opens the interactive board
package board

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/tui"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [project-id]",
		Short: "Open the interactive board for a project",
		Long: `Open a board with one column per status. Tasks move between statuses
with H/L (or < and >); the board refreshes itself whenever a change
invalidates the project.

Key bindings can be changed under key_mappings in the config file.

Examples:
  uptask board 65f0c0ffee
  uptask board --id=65f0c0ffee
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.IDArg(cmd, args, "id")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				// fail with a proper exit code before taking over the terminal
				if _, err := c.App.AuthService.CurrentUser(ctx); err != nil {
					return err
				}
				if _, err := c.App.ProjectService.GetProject(ctx, id); err != nil {
					return err
				}

				model := tui.New(ctx, c.App, id)
				defer model.Close()

				p := tea.NewProgram(model,
					tea.WithContext(ctx),
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.OutOrStdout()))
				if _, err := p.Run(); err != nil {
					return fmt.Errorf("board exited: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	return cmd
}
