package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/uptask/internal/api"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/schema"
	authservice "github.com/thenoetrevino/uptask/internal/services/auth"
	noteservice "github.com/thenoetrevino/uptask/internal/services/note"
	projectservice "github.com/thenoetrevino/uptask/internal/services/project"
	taskservice "github.com/thenoetrevino/uptask/internal/services/task"
	teamservice "github.com/thenoetrevino/uptask/internal/services/team"
)

// ExitError carries the process exit code for an error that has already
// been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Usagef builds an error that maps to ExitUsage
func Usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// Failure is how an error is presented and which code the process exits with
type Failure struct {
	Exit       int
	Code       string
	Message    string
	Suggestion string
}

// Classify maps err onto the exit code table
func Classify(err error) Failure {
	var (
		exitErr   *ExitError
		usage     *usageError
		transport *api.TransportError
		remote    *api.RemoteError
		invalid   *schema.ValidationError
		form      *models.FormError
	)

	switch {
	case errors.As(err, &exitErr):
		f := Classify(exitErr.Err)
		f.Exit = exitErr.Code
		return f

	case errors.As(err, &usage):
		return Failure{Exit: ExitUsage, Code: "USAGE_ERROR", Message: usage.msg}

	case errors.Is(err, authservice.ErrNotLoggedIn):
		return Failure{Exit: ExitAuth, Code: "NOT_LOGGED_IN", Message: "you are not logged in",
			Suggestion: "Run 'uptask auth login' first"}

	case errors.As(err, &transport):
		return Failure{Exit: ExitError, Code: "NETWORK_ERROR", Message: transport.Message(),
			Suggestion: "Check api_url in your config or set UPTASK_API_URL"}

	case errors.As(err, &invalid):
		return Failure{Exit: ExitDataErr, Code: "INVALID_RESPONSE", Message: invalid.Error()}

	case errors.As(err, &form):
		return Failure{Exit: ExitValidation, Code: "INVALID_INPUT", Message: form.Error()}

	case errors.Is(err, models.ErrInvalidStatus):
		return Failure{Exit: ExitValidation, Code: "INVALID_STATUS", Message: err.Error(),
			Suggestion: "Valid statuses: pending, onHold, inProgress, underReview, completed"}

	case errors.Is(err, noteservice.ErrNotNoteCreator):
		return Failure{Exit: ExitValidation, Code: "FORBIDDEN", Message: err.Error()}

	case errors.Is(err, noteservice.ErrNoteNotFound):
		return Failure{Exit: ExitNotFound, Code: "NOTE_NOT_FOUND", Message: err.Error()}

	case errors.Is(err, authservice.ErrInvalidResetToken):
		return Failure{Exit: ExitValidation, Code: "INVALID_TOKEN", Message: err.Error(),
			Suggestion: "Request a new code with 'uptask auth forgot-password'"}

	case errors.Is(err, projectservice.ErrInvalidProjectID),
		errors.Is(err, projectservice.ErrEmptyPassword),
		errors.Is(err, taskservice.ErrInvalidProjectID),
		errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, noteservice.ErrInvalidTaskID),
		errors.Is(err, teamservice.ErrInvalidProjectID),
		errors.Is(err, teamservice.ErrInvalidUserID):
		return Failure{Exit: ExitUsage, Code: "USAGE_ERROR", Message: err.Error()}

	case errors.As(err, &remote):
		return classifyRemote(remote)
	}

	return Failure{Exit: ExitError, Code: "ERROR", Message: err.Error()}
}

func classifyRemote(remote *api.RemoteError) Failure {
	msg := remote.Message
	if msg == "" {
		msg = remote.Error()
	}

	switch remote.StatusCode {
	case http.StatusUnauthorized:
		return Failure{Exit: ExitAuth, Code: "UNAUTHORIZED", Message: msg,
			Suggestion: "Run 'uptask auth login' to start a new session"}
	case http.StatusNotFound:
		return Failure{Exit: ExitNotFound, Code: "NOT_FOUND", Message: msg}
	case http.StatusBadRequest, http.StatusForbidden, http.StatusConflict, http.StatusUnprocessableEntity:
		return Failure{Exit: ExitValidation, Code: "REJECTED", Message: msg}
	}
	return Failure{Exit: ExitError, Code: "SERVER_ERROR", Message: msg}
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return Classify(err).Exit
}

// Fail reports err through the formatter and returns an *ExitError so the
// caller's RunE can hand the code back to main.
func Fail(f *OutputFormatter, err error) error {
	failure := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(failure.Code, failure.Message, failure.Suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &ExitError{Code: failure.Exit, Err: err}
}

// CommandExitCode is the exit code for an error returned by a command tree.
// Errors from RunE are already *ExitError; anything else was produced by
// cobra while parsing flags and arguments.
func CommandExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
