package auth

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
)

// ForgotPasswordCmd returns the auth forgot-password subcommand
func ForgotPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Email a password reset code",
		Long: `Start a password reset. The emailed six digit code can be checked with
'uptask auth validate-token' and is consumed by 'uptask auth reset-password'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email := cli.StringFlag(cmd, "email")
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.AuthService.ForgotPassword(ctx, email)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	cmd.Flags().String("email", "", "Email address of the account (required)")
	cli.MarkRequired(cmd, "email")
	cli.AddOutputFlags(cmd)
	return cmd
}

// ValidateTokenCmd returns the auth validate-token subcommand
func ValidateTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate-token <code>",
		Short: "Check a password reset code without using it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.AuthService.ValidateToken(ctx, code)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

// ResetPasswordCmd returns the auth reset-password subcommand
func ResetPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-password <code>",
		Short: "Set a new password with a reset code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			password, err := cli.SecretFlag(cmd, "password")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			form := models.NewPasswordForm{Password: password, PasswordConfirmation: password}
			if cli.Changed(cmd, "password-confirmation") {
				form.PasswordConfirmation = cli.StringFlag(cmd, "password-confirmation")
			}

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.AuthService.ResetPassword(ctx, code, form)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	cmd.Flags().String("password", "", "New password, or - to read it from stdin (required)")
	cmd.Flags().String("password-confirmation", "", "Repeat the new password (defaults to --password)")
	cli.MarkRequired(cmd, "password")
	cli.AddOutputFlags(cmd)
	return cmd
}
