package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	uptaskcli "github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/testutil/cli"
	"github.com/thenoetrevino/uptask/internal/testutil/fakeapi"
)

func TestBoard_FailsBeforeOpening(t *testing.T) {
	t.Run("Missing id", func(t *testing.T) {
		env := cli.SetupCLITest(t)
		res := cli.Execute(t, env.App, BoardCmd(), nil)
		assert.Equal(t, uptaskcli.ExitUsage, res.ExitCode())
	})

	t.Run("Unknown project", func(t *testing.T) {
		env := cli.SetupCLITest(t)
		res := cli.Execute(t, env.App, BoardCmd(), []string{"ffffffffffffffffffffffff"})
		assert.Equal(t, uptaskcli.ExitNotFound, res.ExitCode())
		assert.Contains(t, res.Stderr, "Project not found")
	})

	t.Run("Not logged in", func(t *testing.T) {
		srv := fakeapi.New(t)
		app, _ := cli.NewAnonymousApp(t, srv)
		res := cli.Execute(t, app, BoardCmd(), []string{"ffffffffffffffffffffffff"})
		assert.Equal(t, uptaskcli.ExitAuth, res.ExitCode())
	})
}
