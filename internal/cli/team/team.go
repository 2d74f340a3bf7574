// Package team holds the commands that manage project membership
package team

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
)

// TeamCmd returns the team parent command
func TeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "List, add and remove project members",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(FindCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}

func addProjectFlag(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "Project ID (required)")
	cli.MarkRequired(cmd, "project")
}

func printMember(f *cli.OutputFormatter, m models.TeamMember) {
	fmt.Fprintf(f.Writer(), "%s  %s  %s\n",
		cli.TitleStyle.Render(m.Name), m.Email, cli.SubtitleStyle.Render(m.ID))
}

// ListCmd returns the team list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the members of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := cli.StringFlag(cmd, "project")
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				members, err := c.App.TeamService.ListMembers(ctx, projectID)
				if err != nil {
					return err
				}

				if f.Quiet {
					for _, m := range members {
						fmt.Fprintln(f.Writer(), m.ID)
					}
					return nil
				}
				if f.JSON {
					return f.Success(members)
				}

				if len(members) == 0 {
					_, err := fmt.Fprintln(f.Writer(), "No team members yet. Add one with 'uptask team add'.")
					return err
				}
				fmt.Fprintln(f.Writer(), cli.SectionStyle.Render(cli.Plural(len(members), "member", "members")))
				for _, m := range members {
					printMember(f, m)
				}
				return nil
			})
		},
	}

	addProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

// FindCmd returns the team find subcommand
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Look up a user by email before adding them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := cli.StringFlag(cmd, "project")
			email := cli.StringFlag(cmd, "email")
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				m, err := c.App.TeamService.FindByEmail(ctx, projectID, email)
				if err != nil {
					return err
				}
				if f.JSON || f.Quiet {
					return f.Success(m)
				}
				printMember(f, m)
				return nil
			})
		},
	}

	addProjectFlag(cmd)
	cmd.Flags().String("email", "", "Email address to look up (required)")
	cli.MarkRequired(cmd, "email")
	cli.AddOutputFlags(cmd)
	return cmd
}

// resolveUser returns the positional user id, or looks up --email
func resolveUser(ctx context.Context, cmd *cobra.Command, c *cli.CLI, projectID string, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	email := cli.StringFlag(cmd, "email")
	if email == "" {
		return "", cli.Usagef("pass a user id or --email")
	}
	m, err := c.App.TeamService.FindByEmail(ctx, projectID, email)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// AddCmd returns the team add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [user-id]",
		Short: "Add a user to a project you manage",
		Long: `Add a user to a project you manage, by id or by email.

Examples:
  uptask team add 65f0c0ffee --project=65f0beef
  uptask team add --email=bob@example.com --project=65f0beef
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := cli.StringFlag(cmd, "project")
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				userID, err := resolveUser(ctx, cmd, c, projectID, args)
				if err != nil {
					return err
				}
				msg, err := c.App.TeamService.AddMember(ctx, projectID, userID)
				if err != nil {
					return err
				}
				return f.Message(msg, userID)
			})
		},
	}

	addProjectFlag(cmd)
	cmd.Flags().String("email", "", "Add the user with this email")
	cli.AddOutputFlags(cmd)
	return cmd
}

// RemoveCmd returns the team remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [user-id]",
		Short: "Remove a member from a project you manage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := cli.StringFlag(cmd, "project")
			return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
				userID, err := resolveUser(ctx, cmd, c, projectID, args)
				if err != nil {
					return err
				}
				msg, err := c.App.TeamService.RemoveMember(ctx, projectID, userID)
				if err != nil {
					return err
				}
				return f.Message(msg, userID)
			})
		},
	}

	addProjectFlag(cmd)
	cmd.Flags().String("email", "", "Remove the member with this email")
	cli.AddOutputFlags(cmd)
	return cmd
}
