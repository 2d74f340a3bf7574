// Package auth holds the account and session commands
//
// e.g., uptask auth login ...
package auth

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
)

// AuthCmd returns the auth parent command
func AuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Create an account, sign in and recover passwords",
	}

	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(ConfirmCmd())
	cmd.AddCommand(RequestCodeCmd())
	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(WhoamiCmd())
	cmd.AddCommand(ForgotPasswordCmd())
	cmd.AddCommand(ValidateTokenCmd())
	cmd.AddCommand(ResetPasswordCmd())

	return cmd
}

// RegisterCmd returns the auth register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long: `Create an account. A six digit confirmation code is sent to the email
address; pass it to 'uptask auth confirm' before logging in.

Examples:
  uptask auth register --name="Ana" --email=ana@example.com --password=-
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := cli.SecretFlag(cmd, "password")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			confirmation := password
			if cli.Changed(cmd, "password-confirmation") {
				confirmation = cli.StringFlag(cmd, "password-confirmation")
			}
			form := models.RegistrationForm{
				Name:                 cli.StringFlag(cmd, "name"),
				Email:                cli.StringFlag(cmd, "email"),
				Password:             password,
				PasswordConfirmation: confirmation,
			}

			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.AuthService.Register(ctx, form)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	cmd.Flags().String("name", "", "Your name (required)")
	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("password", "", "Password of at least 8 characters, or - to read it from stdin (required)")
	cmd.Flags().String("password-confirmation", "", "Repeat the password (defaults to --password)")
	cli.MarkRequired(cmd, "name", "email", "password")
	cli.AddOutputFlags(cmd)
	return cmd
}

// ConfirmCmd returns the auth confirm subcommand
func ConfirmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm <code>",
		Short: "Confirm an account with the emailed six digit code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.AuthService.Confirm(ctx, code)
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

// RequestCodeCmd returns the auth request-code subcommand
func RequestCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-code",
		Short: "Send a new confirmation code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email := cli.StringFlag(cmd, "email")
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				msg, err := c.App.AuthService.RequestCode(ctx, email)
				if err != nil {
					return err
				}
				return f.Message(msg, "")
			})
		},
	}

	cmd.Flags().String("email", "", "Email address of the unconfirmed account (required)")
	cli.MarkRequired(cmd, "email")
	cli.AddOutputFlags(cmd)
	return cmd
}
