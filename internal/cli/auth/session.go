package auth

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/config"
	"github.com/thenoetrevino/uptask/internal/models"
)

// LoginCmd returns the auth login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Long: `Sign in. The session token is kept in the configured token store and
sent with every later command until it expires or you log out.

Examples:
  uptask auth login --email=ana@example.com --password=-

  # Remember a different server for later commands
  uptask auth login --email=ana@example.com --password=- --api-url=https://uptask.example.com/api
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := cli.SecretFlag(cmd, "password")
			if err != nil {
				return cli.Fail(cli.NewFormatter(cmd), err)
			}
			form := models.LoginForm{Email: cli.StringFlag(cmd, "email"), Password: password}
			apiURL := cli.StringFlag(cmd, "api-url")

			var override func(*config.Config)
			if apiURL != "" {
				override = func(cfg *config.Config) { cfg.APIURL = apiURL }
			}

			return cli.RunWithConfig(cmd, override, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				if err := c.App.AuthService.Login(ctx, form); err != nil {
					return err
				}
				if apiURL != "" {
					if err := saveAPIURL(apiURL); err != nil {
						return fmt.Errorf("logged in but the api url was not saved: %w", err)
					}
				}

				user, err := c.App.AuthService.CurrentUser(ctx)
				if err != nil {
					return err
				}
				return f.Render(user, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "✓ Logged in as %s <%s>\n", user.Name, user.Email)
					return err
				})
			})
		},
	}

	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("password", "", "Password, or - to read it from stdin (required)")
	cmd.Flags().String("api-url", "", "Server base URL, saved to the config file on success")
	cli.MarkRequired(cmd, "email", "password")
	cli.AddOutputFlags(cmd)
	return cmd
}

func saveAPIURL(apiURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.APIURL = apiURL
	if err := cfg.Save(); err != nil {
		return err
	}
	slog.Info("saved api url", "api_url", apiURL)
	return nil
}

// LogoutCmd returns the auth logout subcommand
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				if err := c.App.AuthService.Logout(); err != nil {
					return err
				}
				return f.Message("Logged out", "")
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

// WhoamiCmd returns the auth whoami subcommand
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				user, err := c.App.AuthService.CurrentUser(ctx)
				if err != nil {
					return err
				}
				return f.Render(user, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s <%s>\n%s\n", cli.TitleStyle.Render(user.Name), user.Email, cli.SubtitleStyle.Render(user.ID))
					return err
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
