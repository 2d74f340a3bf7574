package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/uptask/internal/api"
	uptaskcli "github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/credentials"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/testutil"
	"github.com/thenoetrevino/uptask/internal/testutil/cli"
)

func TestUpdateProfile(t *testing.T) {
	env := cli.SetupCLITest(t)

	t.Run("Keeps the fields not passed", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, env.App, UpdateCmd(), []string{"--name", "Alice Liddell", "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, env.Session.User.ID, strings.TrimSpace(out))

		user, err := env.Session.Client.GetUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Alice Liddell", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("Cached user is refreshed", func(t *testing.T) {
		user, err := env.App.AuthService.CurrentUser(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Alice Liddell", user.Name)
	})

	t.Run("Email taken by another account", func(t *testing.T) {
		env.Server.CreateUser("Bob", "bob@example.com", "secret123")

		res := cli.Execute(t, env.App, UpdateCmd(), []string{"--email", "bob@example.com", "--json"})

		assert.Equal(t, uptaskcli.ExitValidation, res.ExitCode())
		result := testutil.ParseJSON(t, res.Stdout)
		assert.Equal(t, "Email already in use", result["error"].(map[string]any)["message"])
	})

	t.Run("Invalid email is never sent", func(t *testing.T) {
		before := env.Server.Requests("PUT", "/auth/profile")

		res := cli.Execute(t, env.App, UpdateCmd(), []string{"--email", "alice"})

		assert.Equal(t, uptaskcli.ExitValidation, res.ExitCode())
		assert.Equal(t, before, env.Server.Requests("PUT", "/auth/profile"))
	})

	t.Run("No flags", func(t *testing.T) {
		res := cli.Execute(t, env.App, UpdateCmd(), nil)
		assert.Equal(t, uptaskcli.ExitUsage, res.ExitCode())
	})
}

func TestChangePassword(t *testing.T) {
	env := cli.SetupCLITest(t)

	t.Run("Wrong current password", func(t *testing.T) {
		res := cli.Execute(t, env.App, PasswordCmd(), []string{"--current", "nope", "--password", "newsecret1"})

		assert.Equal(t, uptaskcli.ExitValidation, res.ExitCode())
		assert.Contains(t, res.Stderr, "Current password is incorrect")
	})

	t.Run("Current password from stdin", func(t *testing.T) {
		cmd := PasswordCmd()
		cmd.SetIn(strings.NewReader("secret123\n"))

		out, err := cli.ExecuteCLICommand(t, env.App, cmd, []string{"--current", "-", "--password", "newsecret1"})

		require.NoError(t, err)
		assert.Contains(t, out, "Password changed")

		store := credentials.NewMemoryStore()
		client := api.New(env.Server.URL, store)
		_, err = client.Login(context.Background(), models.LoginForm{Email: "alice@example.com", Password: "newsecret1"})
		require.NoError(t, err)
	})

	t.Run("Short password is rejected locally", func(t *testing.T) {
		res := cli.Execute(t, env.App, PasswordCmd(), []string{"--current", "newsecret1", "--password", "short"})

		assert.Equal(t, uptaskcli.ExitValidation, res.ExitCode())
		assert.Contains(t, res.Stderr, "at least 8")
	})
}
