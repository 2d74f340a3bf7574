package project

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project managed by you.

Examples:
  uptask project create --name="Website" --client="ACME" --description="Relaunch"

  # JSON output for agents
  uptask project create --name="Website" --client="ACME" --description="Relaunch" --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := models.ProjectForm{
				ProjectName: cli.StringFlag(cmd, "name"),
				ClientName:  cli.StringFlag(cmd, "client"),
				Description: cli.StringFlag(cmd, "description"),
			}
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.ProjectService.CreateProject(ctx, form)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	cmd.Flags().String("client", "", "Client name (required)")
	cmd.Flags().String("description", "", "Project description (required)")
	cli.MarkRequired(cmd, "name", "client", "description")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)
	return cmd
}
