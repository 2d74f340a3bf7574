package testutil

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs a cobra command and captures its stdout and stderr
func ExecuteCommand(t *testing.T, cmd *cobra.Command) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
