package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Session store errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, project not found, note not found,
	// or any 404 answered by the server.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Server responses that do not match the entity schemas.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid status values, form values rejected before sending,
	// or requests the server refused (403, 409) for policy reasons.
	ExitValidation = 5

	// ExitAuth indicates the user is not signed in or the session expired.
	// Use for: 401 responses and commands that need a token when none is stored.
	ExitAuth = 6
)
