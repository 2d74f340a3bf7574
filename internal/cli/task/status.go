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

// StatusCmd returns the task status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status|next|prev>",
		Short: "Change the status of a task",
		Long: `Move a task to another status. The server records who made every change,
including moving a task to the status it already has.

Statuses: pending, onHold, inProgress, underReview, completed

Examples:
  uptask task status 65f0beef inProgress --project=65f0c0ffee

  # Move one step along the board
  uptask task status 65f0beef next --project=65f0c0ffee
  uptask task status 65f0beef prev --project=65f0c0ffee --json
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, target := args[0], args[1]
			projectID := cli.StringFlag(cmd, "project")

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				return runStatus(ctx, c, f, projectID, id, target)
			})
		},
	}

	addProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runStatus(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, projectID, id, target string) error {
	task, err := c.App.TaskService.GetTask(ctx, projectID, id)
	if err != nil {
		return err
	}

	status, err := resolveStatus(task.Status, target)
	if err != nil {
		return err
	}

	updated, err := c.App.TaskService.SetStatus(ctx, task, status)
	if err != nil {
		return err
	}

	return f.Render(updated, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ %s: %s → %s\n", updated.Name, cli.StatusBadge(task.Status), cli.StatusBadge(updated.Status))
		return err
	})
}

// resolveStatus turns the next/prev shortcuts into a concrete status
func resolveStatus(current models.TaskStatus, target string) (models.TaskStatus, error) {
	switch strings.ToLower(target) {
	case "next":
		next, ok := current.Next()
		if !ok {
			return "", cli.Usagef("task is already in the last status (%s)", current.Label())
		}
		return next, nil
	case "prev":
		prev, ok := current.Prev()
		if !ok {
			return "", cli.Usagef("task is already in the first status (%s)", current.Label())
		}
		return prev, nil
	}
	return models.ParseTaskStatus(target)
}
