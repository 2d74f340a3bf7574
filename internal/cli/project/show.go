package project

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/policy"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a project and its tasks grouped by status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.IDArg(cmd, args, "id")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				return runShow(ctx, c, f, id)
			})
		},
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, id string) error {
	project, err := c.App.ProjectService.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if f.JSON || f.Quiet {
		return f.Success(project)
	}

	user, err := c.App.AuthService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return outputHuman(f.Writer(), project, user)
}

func outputHuman(w io.Writer, p models.Project, user models.User) error {
	var content strings.Builder

	content.WriteString(cli.TitleStyle.Render(p.ProjectName))
	content.WriteString("\n")
	content.WriteString(cli.SubtitleStyle.Render(p.ID))
	content.WriteString("\n\n")
	content.WriteString(cli.Field("Client", p.ClientName))
	content.WriteString("\n")
	content.WriteString(cli.Field("Team", cli.Plural(len(p.Team), "member", "members")))
	if policy.IsManager(p.Manager, user.ID) {
		content.WriteString("\n")
		content.WriteString(cli.Field("Role", "manager"))
	}
	content.WriteString("\n")
	content.WriteString(cli.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(p.Description)
	content.WriteString("\n")

	grouped := p.TasksByStatus()
	for _, status := range models.AllStatuses() {
		tasks := grouped[status]
		content.WriteString("\n")
		content.WriteString(cli.StatusBadge(status))
		content.WriteString(" ")
		content.WriteString(cli.SubtitleStyle.Render(fmt.Sprintf("(%d)", len(tasks))))
		content.WriteString("\n")
		for _, t := range tasks {
			content.WriteString(fmt.Sprintf("  • %s %s\n", t.Name, cli.SubtitleStyle.Render(t.ID)))
		}
	}

	_, err := fmt.Fprintln(w, cli.CardStyle.Render(strings.TrimRight(content.String(), "\n")))
	return err
}
