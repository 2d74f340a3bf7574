package project

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/policy"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the projects you manage or belong to",
		Long: `List every project you manage or are a team member of.

Examples:
  uptask project list
  uptask project list --json

  # One id per line
  uptask project list --quiet
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, runList)
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
	projects, err := c.App.ProjectService.ListProjects(ctx)
	if err != nil {
		return err
	}

	if f.Quiet {
		for _, p := range projects {
			fmt.Fprintln(f.Writer(), p.ID)
		}
		return nil
	}
	if f.JSON {
		return f.Success(projects)
	}

	user, err := c.App.AuthService.CurrentUser(ctx)
	if err != nil {
		return err
	}

	w := f.Writer()
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects yet. Create one with 'uptask project create'.")
		return err
	}
	for _, p := range projects {
		printSummary(w, p, user)
	}
	return nil
}

func printSummary(w io.Writer, p models.ProjectSummary, user models.User) {
	role := cli.SubtitleStyle.Render("member")
	if policy.IsManager(p.Manager, user.ID) {
		role = cli.LabelStyle.Render("manager")
	}
	fmt.Fprintf(w, "%s  %s  %s\n", cli.TitleStyle.Render(p.ProjectName), role, cli.SubtitleStyle.Render(p.ID))
	fmt.Fprintf(w, "  %s\n", cli.Field("Client", p.ClientName))
	fmt.Fprintf(w, "  %s\n\n", p.Description)
}
