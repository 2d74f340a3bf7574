package project

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	projectservice "github.com/thenoetrevino/uptask/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a project's name, client or description",
		Long: `Update a project you manage. Fields you leave out keep their current value.

Examples:
  uptask project update 65f0c0ffee --name="Website v2"
  uptask project update --id=65f0c0ffee --client="ACME Corp" --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.IDArg(cmd, args, "id")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			if !cli.Changed(cmd, "name") && !cli.Changed(cmd, "client") && !cli.Changed(cmd, "description") {
				return cli.Fail(cli.NewFormatter(cmd), cli.Usagef("nothing to update: pass --name, --client or --description"))
			}
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				return runUpdate(ctx, cmd, c, f, id)
			})
		},
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("client", "", "New client name")
	cmd.Flags().String("description", "", "New description")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter, id string) error {
	// Start from the edit form so omitted fields are preserved
	form, err := c.App.ProjectService.GetProjectForm(ctx, id)
	if err != nil {
		return err
	}
	if cli.Changed(cmd, "name") {
		form.ProjectName = cli.StringFlag(cmd, "name")
	}
	if cli.Changed(cmd, "client") {
		form.ClientName = cli.StringFlag(cmd, "client")
	}
	if cli.Changed(cmd, "description") {
		form.Description = cli.StringFlag(cmd, "description")
	}

	msg, err := c.App.ProjectService.UpdateProject(ctx, projectservice.UpdateProjectRequest{ID: id, Form: form})
	if err != nil {
		return err
	}
	return f.Message(msg, id)
}
