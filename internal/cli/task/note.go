package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
)

// NoteCmd returns the task note parent command
func NoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Add or delete notes on a task",
	}

	cmd.AddCommand(NoteAddCmd())
	cmd.AddCommand(NoteDeleteCmd())

	return cmd
}

// NoteAddCmd returns the task note add subcommand
func NoteAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <task-id>",
		Short: "Add a note to a task",
		Long: `Add a note to a task. Notes are rendered as markdown by 'uptask task show'.

Examples:
  uptask task note add 65f0beef --project=65f0c0ffee --content="Waiting on **design**"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := args[0]
			projectID := cli.StringFlag(cmd, "project")
			form := models.NoteForm{Content: cli.StringFlag(cmd, "content")}

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				task, err := c.App.TaskService.GetTask(ctx, projectID, taskID)
				if err != nil {
					return err
				}
				msg, err := c.App.NoteService.AddNote(ctx, task, form)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	addProjectFlag(cmd)
	cmd.Flags().String("content", "", "Note text (required)")
	cli.MarkRequired(cmd, "content")
	cli.AddOutputFlags(cmd)
	return cmd
}

// NoteDeleteCmd returns the task note delete subcommand
func NoteDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id> <note-id>",
		Short: "Delete a note you wrote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, noteID := args[0], args[1]
			projectID := cli.StringFlag(cmd, "project")

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				user, err := c.App.AuthService.CurrentUser(ctx)
				if err != nil {
					return err
				}
				task, err := c.App.TaskService.GetTask(ctx, projectID, taskID)
				if err != nil {
					return err
				}
				msg, err := c.App.NoteService.DeleteNote(ctx, task, noteID, user)
				if err != nil {
					return err
				}
				return f.Message(msg, noteID)
			})
		},
	}

	addProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}
