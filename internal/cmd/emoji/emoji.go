// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols printed ahead of user-facing result lines.
const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents a failed operation.
	Error = "✗"

	// Warning represents a non-fatal issue, such as a dry run that wrote nothing.
	Warning = "!"
)
