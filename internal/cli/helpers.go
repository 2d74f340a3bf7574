package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// MarkRequired marks flags as required, logging instead of panicking when a
// name is wrong
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}
}

// SecretFlag returns a password flag. The value "-" reads one line from the
// command's stdin so secrets stay out of shell history.
func SecretFlag(cmd *cobra.Command, name string) (string, error) {
	value, _ := cmd.Flags().GetString(name)
	if value != "-" {
		return value, nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", Usagef("--%s -: nothing to read on stdin", name)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IDArg returns the positional id or the value of the named flag
func IDArg(cmd *cobra.Command, args []string, flag string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if id, _ := cmd.Flags().GetString(flag); id != "" {
		return id, nil
	}
	return "", Usagef("%s is required (positional or --%s)", flag, flag)
}

// StringFlag reads a string flag, ignoring a missing definition
func StringFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// Changed reports whether the user set the flag on the command line
func Changed(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Changed(name)
}

// Plural formats a count with a singular or plural noun
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
