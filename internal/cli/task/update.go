package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	taskservice "github.com/thenoetrevino/uptask/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task's name or description",
		Long: `Update a task. Fields you leave out keep their current value.

Examples:
  uptask task update 65f0beef --project=65f0c0ffee --name="Write better copy"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.IDArg(cmd, args, "id")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			if !cli.Changed(cmd, "name") && !cli.Changed(cmd, "description") {
				return cli.Fail(cli.NewFormatter(cmd), cli.Usagef("nothing to update: pass --name or --description"))
			}
			projectID := cli.StringFlag(cmd, "project")

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				task, err := c.App.TaskService.GetTask(ctx, projectID, id)
				if err != nil {
					return err
				}

				req := taskservice.UpdateTaskRequest{ProjectID: projectID, TaskID: id}
				req.Form.Name = task.Name
				req.Form.Description = task.Description
				if cli.Changed(cmd, "name") {
					req.Form.Name = cli.StringFlag(cmd, "name")
				}
				if cli.Changed(cmd, "description") {
					req.Form.Description = cli.StringFlag(cmd, "description")
				}

				msg, err := c.App.TaskService.UpdateTask(ctx, req)
				if err != nil {
					return err
				}
				return f.Message(msg, id)
			})
		},
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	addProjectFlag(cmd)
	cmd.Flags().String("name", "", "New task name")
	cmd.Flags().String("description", "", "New task description")
	cli.AddOutputFlags(cmd)
	return cmd
}
