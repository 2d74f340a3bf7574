package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
	taskservice "github.com/thenoetrevino/uptask/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a task in a project you manage. New tasks start as Pending.

Examples:
  uptask task create --project=65f0c0ffee --name="Write copy" --description="Landing page"

  # JSON output for agents
  uptask task create --project=65f0c0ffee --name="Write copy" --description="Landing page" --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := taskservice.CreateTaskRequest{
				ProjectID: cli.StringFlag(cmd, "project"),
				Form: models.TaskForm{
					Name:        cli.StringFlag(cmd, "name"),
					Description: cli.StringFlag(cmd, "description"),
				},
			}
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.TaskService.CreateTask(ctx, req)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	addProjectFlag(cmd)
	cmd.Flags().String("name", "", "Task name (required)")
	cmd.Flags().String("description", "", "Task description, markdown allowed (required)")
	cli.MarkRequired(cmd, "name", "description")

	cli.AddOutputFlags(cmd)
	return cmd
}
