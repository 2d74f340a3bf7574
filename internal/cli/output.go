package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer // defaults to os.Stdout
	ErrOut io.Writer // defaults to os.Stderr
}

// AddOutputFlags registers the --json and --quiet flags every command accepts
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// NewFormatter builds a formatter from the command's flags and writers
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Writer is where human and JSON output goes
func (f *OutputFormatter) Writer() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.Writer(), idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return f.writeJSON(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Render prints data as JSON, its ID in quiet mode, or the output of human
func (f *OutputFormatter) Render(data any, human func(w io.Writer) error) error {
	if f.JSON || f.Quiet {
		return f.Success(data)
	}
	return human(f.Writer())
}

// Message outputs the confirmation text the server returned for a mutation.
// Quiet mode prints id when one is known.
func (f *OutputFormatter) Message(msg, id string) error {
	if f.Quiet {
		if id == "" {
			return nil
		}
		_, err := fmt.Fprintln(f.Writer(), id)
		return err
	}

	if f.JSON {
		data := map[string]any{"message": msg}
		if id != "" {
			data["id"] = id
		}
		return f.writeJSON(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if msg == "" {
		msg = "Done"
	}
	_, err := fmt.Fprintf(f.Writer(), "✓ %s\n", msg)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.writeJSON(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

func (f *OutputFormatter) writeJSON(v any) error {
	return json.NewEncoder(f.Writer()).Encode(v)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	var err error
	switch v := data.(type) {
	case string:
		_, err = fmt.Fprintln(f.Writer(), strings.TrimRight(v, "\n"))
	case fmt.Stringer:
		_, err = fmt.Fprintln(f.Writer(), v.String())
	default:
		_, err = fmt.Fprintf(f.Writer(), "%+v\n", data)
	}
	return err
}
