package tui

// ActionableError wraps an error with an actionable suggestion.
// Used to give users a clear next step when a command fails.
//
// Example usage:
//
//	err := NewActionableError("spec file not found", "Run with --specs <path> or set specs_path in config")
//	output.Error(err)
//	// Outputs: ✗ spec file not found
//	//          ▸ Try: Run with --specs <path> or set specs_path in config
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion provides actionable guidance for resolving the error.
	// Should start with a verb (e.g., "Run: polaris tasks available", "Check the file path").
	Suggestion string

	// Context provides optional additional information about the error.
	// When present, it is appended to the message in parentheses.
	Context string
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// Error implements the error interface.
// Returns the message with context if provided, e.g., "spec file not found (specs/polaris.yaml)".
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// WithContext adds optional context to the error.
// Returns the same error for method chaining.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}
