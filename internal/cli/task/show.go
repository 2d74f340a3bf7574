package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including its description, notes and status history.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.IDArg(cmd, args, "id")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			projectID := cli.StringFlag(cmd, "project")

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				task, err := c.App.TaskService.GetTask(ctx, projectID, id)
				if err != nil {
					return err
				}
				return f.Render(task, func(w io.Writer) error {
					return outputHuman(w, task)
				})
			})
		},
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	addProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

const markdownWidth = 60

func outputHuman(w io.Writer, task models.Task) error {
	var content strings.Builder

	content.WriteString(cli.TitleStyle.Render(task.Name))
	content.WriteString("  ")
	content.WriteString(cli.StatusBadge(task.Status))
	content.WriteString("\n")
	content.WriteString(cli.SubtitleStyle.Render(task.ID))
	content.WriteString("\n\n")

	if !task.CreatedAt.IsZero() {
		content.WriteString(cli.Field("Created", task.CreatedAt.Local().Format("2006-01-02 15:04")))
		content.WriteString("\n")
	}
	if !task.UpdatedAt.IsZero() {
		content.WriteString(cli.Field("Updated", task.UpdatedAt.Local().Format("2006-01-02 15:04")))
		content.WriteString("\n")
	}

	content.WriteString(cli.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(cli.RenderMarkdown(task.Description, markdownWidth))
	content.WriteString("\n")

	if len(task.CompletedBy) > 0 {
		content.WriteString(cli.SectionStyle.Render("History"))
		content.WriteString("\n")
		for _, entry := range task.CompletedBy {
			content.WriteString(fmt.Sprintf("  %s %s\n", cli.StatusBadge(entry.Status), entry.User.Name))
		}
	}

	content.WriteString(cli.SectionStyle.Render(fmt.Sprintf("Notes (%d)", len(task.Notes))))
	content.WriteString("\n")
	for _, note := range task.Notes {
		header := note.CreatedBy.Name
		if !note.CreatedAt.IsZero() {
			header += " · " + note.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		content.WriteString(cli.LabelStyle.Render(header))
		content.WriteString(" ")
		content.WriteString(cli.SubtitleStyle.Render(note.ID))
		content.WriteString("\n")
		content.WriteString(cli.RenderMarkdown(note.Content, markdownWidth))
		content.WriteString("\n")
	}

	_, err := fmt.Fprintln(w, cli.CardStyle.Render(strings.TrimRight(content.String(), "\n")))
	return err
}
