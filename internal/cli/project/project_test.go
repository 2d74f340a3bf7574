package project

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	uptaskcli "github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/testutil"
	"github.com/thenoetrevino/uptask/internal/testutil/cli"
)

func TestCreateProject(t *testing.T) {
	env := cli.SetupCLITest(t)

	t.Run("Create with all fields", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, env.App, CreateCmd(), []string{
			"--name", "Website", "--client", "ACME", "--description", "Relaunch",
		})

		require.NoError(t, err)
		assert.Contains(t, out, "Project created")

		list, err := env.Session.Client.ListProjects(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Website", list[0].ProjectName)
		assert.Equal(t, env.Session.User.ID, list[0].Manager)
	})

	t.Run("JSON output", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, env.App, CreateCmd(), []string{
			"--name", "API", "--client", "ACME", "--description", "Backend", "--json",
		})

		require.NoError(t, err)
		result := testutil.ParseJSON(t, out)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, "Project created", result["data"].(map[string]any)["message"])
	})

	t.Run("Blank field is rejected before sending", func(t *testing.T) {
		before := env.Server.Requests("POST", "/projects")

		res := cli.Execute(t, env.App, CreateCmd(), []string{
			"--name", "API", "--client", "", "--description", "Backend",
		})

		require.Error(t, res.Err)
		assert.Equal(t, uptaskcli.ExitValidation, res.ExitCode())
		assert.Contains(t, res.Stderr, "clientName is required")
		assert.Equal(t, before, env.Server.Requests("POST", "/projects"))
	})

	t.Run("Missing required flag", func(t *testing.T) {
		res := cli.Execute(t, env.App, CreateCmd(), []string{"--name", "API"})

		require.Error(t, res.Err)
		assert.Equal(t, uptaskcli.ExitUsage, res.ExitCode())
	})
}

func TestListProjects(t *testing.T) {
	env := cli.SetupCLITest(t)
	mine := env.Session.CreateTestProject(t, "Mine")

	bob := testutil.NewSession(t, env.Server, "bob")
	shared := bob.CreateTestProject(t, "Shared")
	bob.AddMember(t, shared.ID, env.Session.User)
	bob.CreateTestProject(t, "Private")

	t.Run("Human output marks the role", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, env.App, ListCmd(), nil)

		require.NoError(t, err)
		assert.Contains(t, out, "Mine")
		assert.Contains(t, out, "Shared")
		assert.NotContains(t, out, "Private")
		assert.Contains(t, out, "manager")
		assert.Contains(t, out, "member")
	})

	t.Run("Quiet prints one id per line", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, env.App, ListCmd(), []string{"--quiet"})

		require.NoError(t, err)
		ids := strings.Fields(out)
		assert.ElementsMatch(t, []string{mine.ID, shared.ID}, ids)
	})

	t.Run("JSON output", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, env.App, ListCmd(), []string{"--json"})

		require.NoError(t, err)
		data := testutil.ParseJSON(t, out)["data"].([]any)
		assert.Len(t, data, 2)
	})
}

func TestShowProject(t *testing.T) {
	env := cli.SetupCLITest(t)
	project := env.Session.CreateTestProject(t, "Website")
	env.Session.CreateTestTask(t, project.ID, "Write copy")

	t.Run("Groups tasks by status", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, env.App, ShowCmd(), []string{project.ID})

		require.NoError(t, err)
		assert.Contains(t, out, "Website")
		assert.Contains(t, out, "Write copy")
		assert.Contains(t, out, "Pending")
		assert.Contains(t, out, "Under Review")
	})

	t.Run("Quiet prints the id", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, env.App, ShowCmd(), []string{"--id", project.ID, "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, project.ID, strings.TrimSpace(out))
	})

	t.Run("Unknown project exits not found", func(t *testing.T) {
		res := cli.Execute(t, env.App, ShowCmd(), []string{"ffffffffffffffffffffffff", "--json"})

		require.Error(t, res.Err)
		assert.Equal(t, uptaskcli.ExitNotFound, res.ExitCode())
		result := testutil.ParseJSON(t, res.Stdout)
		assert.Equal(t, false, result["success"])
		assert.Equal(t, "NOT_FOUND", result["error"].(map[string]any)["code"])
	})

	t.Run("Missing id is a usage error", func(t *testing.T) {
		res := cli.Execute(t, env.App, ShowCmd(), nil)

		assert.Equal(t, uptaskcli.ExitUsage, res.ExitCode())
	})
}

func TestUpdateProject(t *testing.T) {
	env := cli.SetupCLITest(t)
	project := env.Session.CreateTestProject(t, "Website")

	out, err := cli.ExecuteCLICommand(t, env.App, UpdateCmd(), []string{project.ID, "--client", "Globex", "--quiet"})

	require.NoError(t, err)
	assert.Equal(t, project.ID, strings.TrimSpace(out))

	got, err := env.Session.Client.GetProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex", got.ClientName)
	assert.Equal(t, "Website", got.ProjectName, "fields not passed must keep their value")

	res := cli.Execute(t, env.App, UpdateCmd(), []string{project.ID})
	assert.Equal(t, uptaskcli.ExitUsage, res.ExitCode())
}

func TestUpdateProject_NotManager(t *testing.T) {
	env := cli.SetupCLITest(t)
	bob := testutil.NewSession(t, env.Server, "bob")
	shared := bob.CreateTestProject(t, "Shared")
	bob.AddMember(t, shared.ID, env.Session.User)

	res := cli.Execute(t, env.App, UpdateCmd(), []string{shared.ID, "--name", "Mine now"})

	require.Error(t, res.Err)
	assert.Equal(t, uptaskcli.ExitValidation, res.ExitCode())
	assert.Contains(t, res.Stderr, "Invalid action")
}

func TestDeleteProject(t *testing.T) {
	env := cli.SetupCLITest(t)
	project := env.Session.CreateTestProject(t, "Website")

	t.Run("Wrong password keeps the project", func(t *testing.T) {
		res := cli.Execute(t, env.App, DeleteCmd(), []string{project.ID, "--password", "nope"})

		require.Error(t, res.Err)
		assert.Equal(t, uptaskcli.ExitValidation, res.ExitCode())
		assert.Equal(t, 0, env.Server.Requests("DELETE", "/projects/"+project.ID))
	})

	t.Run("Password from stdin", func(t *testing.T) {
		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("secret123\n"))

		out, err := cli.ExecuteCLICommand(t, env.App, cmd, []string{project.ID, "--password", "-"})

		require.NoError(t, err)
		assert.Contains(t, out, "Project deleted")
		assert.Equal(t, 1, env.Server.Requests("DELETE", "/projects/"+project.ID))
	})
}
