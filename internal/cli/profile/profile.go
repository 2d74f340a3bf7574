// Package profile holds the commands that edit the logged in account
package profile

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
)

// ProfileCmd returns the profile parent command
func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Edit your name, email and password",
	}

	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(PasswordCmd())

	return cmd
}

// UpdateCmd returns the profile update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change your name or email",
		Long: `Change the name or email of the logged in account. A field you leave
out keeps its current value.

Examples:
  uptask profile update --name="Ana María"
  uptask profile update --email=ana@work.example --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cli.Changed(cmd, "name") && !cli.Changed(cmd, "email") {
				return cli.Fail(cli.NewFormatter(cmd), cli.Usagef("nothing to update: pass --name or --email"))
			}
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				user, err := c.App.AuthService.CurrentUser(ctx)
				if err != nil {
					return err
				}

				form := models.ProfileForm{Name: user.Name, Email: user.Email}
				if cli.Changed(cmd, "name") {
					form.Name = cli.StringFlag(cmd, "name")
				}
				if cli.Changed(cmd, "email") {
					form.Email = cli.StringFlag(cmd, "email")
				}

				msg, err := c.App.AuthService.UpdateProfile(ctx, form)
				if err != nil {
					return err
				}
				return f.Message(msg, user.ID)
			})
		},
	}

	cmd.Flags().String("name", "", "New display name")
	cmd.Flags().String("email", "", "New email address")
	cli.AddOutputFlags(cmd)
	return cmd
}

// PasswordCmd returns the profile password subcommand
func PasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		Long: `Change the password of the logged in account. Either password may be
given as - to read it from stdin; when both are, the current password is
read first.

Examples:
  uptask profile password --current=- --password=newsecret1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cli.NewFormatter(cmd)
			current, err := cli.SecretFlag(cmd, "current")
			if err != nil {
				return cli.Fail(f, err)
			}
			password, err := cli.SecretFlag(cmd, "password")
			if err != nil {
				return cli.Fail(f, err)
			}
			confirmation := password
			if cli.Changed(cmd, "password-confirmation") {
				confirmation = cli.StringFlag(cmd, "password-confirmation")
			}
			form := models.UpdatePasswordForm{
				CurrentPassword:      current,
				Password:             password,
				PasswordConfirmation: confirmation,
			}

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.AuthService.ChangePassword(ctx, form)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	cmd.Flags().String("current", "", "Current password, or - for stdin (required)")
	cmd.Flags().String("password", "", "New password of at least 8 characters, or - for stdin (required)")
	cmd.Flags().String("password-confirmation", "", "Repeat the new password (defaults to --password)")
	cli.MarkRequired(cmd, "current", "password")
	cli.AddOutputFlags(cmd)
	return cmd
}
