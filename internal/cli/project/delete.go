package project

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a project after confirming your password",
		Long: `Delete a project you manage. Your password is checked first and the
project is only deleted when it is correct.

Examples:
  uptask project delete 65f0c0ffee --password="secret123"

  # Read the password from stdin
  echo "$PASSWORD" | uptask project delete 65f0c0ffee --password=-
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.IDArg(cmd, args, "id")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			password, err := cli.SecretFlag(cmd, "password")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.ProjectService.DeleteWithPassword(ctx, id, password)
				if err != nil {
					return err
				}
				return f.Message(msg, id)
			})
		},
	}

	cmd.Flags().String("id", "", "Project ID (can also be provided as positional argument)")
	cmd.Flags().String("password", "", "Your account password, or - to read it from stdin (required)")
	cli.MarkRequired(cmd, "password")
	cli.AddOutputFlags(cmd)
	return cmd
}
