package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.IDArg(cmd, args, "id")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			projectID := cli.StringFlag(cmd, "project")

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.TaskService.DeleteTask(ctx, projectID, id)
				if err != nil {
					return err
				}
				return f.Message(msg, id)
			})
		},
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	addProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}
