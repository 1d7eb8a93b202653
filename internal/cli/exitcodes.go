package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Report not found, container not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Layout documents that cannot be parsed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Full rows, disallowed widths, bad titles, layouts that
	// break the grid rules.
	ExitValidation = 5

	// ExitConflict indicates the layout was saved by someone else while
	// the command was working on it. Retrying usually succeeds.
	ExitConflict = 6
)
