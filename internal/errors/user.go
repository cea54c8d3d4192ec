package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Routing
	// ===================
	{
		err: ErrAgentTypeRequired,
		info: ErrorInfo{
			Message: "An agent type is required to recommend a task.",
			Action:  "Pass --agent with the agent type, e.g. 'polaris next --agent backend'.",
		},
	},
	{
		err: ErrTaskIDRequired,
		info: ErrorInfo{
			Message: "A task ID is required for this operation.",
			Action:  "Provide the task ID as an argument, e.g. 'polaris deps TASK-101'.",
		},
	},
	{
		err: ErrTaskNotFound,
		info: ErrorInfo{
			Message: "The specified task was not found in the pool.",
			Action:  "Run 'polaris tasks available' to see known tasks.",
		},
	},
	{
		err: ErrSpecNotFound,
		info: ErrorInfo{
			Message: "The specified spec was not found in the pool.",
			Action:  "Check the spec ID in your specs file.",
		},
	},
	{
		err: ErrSpecRepository,
		info: ErrorInfo{
			Message: "Could not read tasks from the spec repository.",
			Action:  "Check that the specs file exists and is readable.",
		},
	},
	{
		err: ErrNotInitialized,
		info: ErrorInfo{
			Message: "The routing engine has not been initialized.",
			Action:  "Ensure the specs file loads without errors before routing.",
		},
	},
	{
		err: ErrNoTasksFound,
		info: ErrorInfo{
			Message: "No tasks found in the pool.",
			Action:  "Add tasks to your specs file and reload.",
		},
	},
	{
		err: ErrDuplicateTaskID,
		info: ErrorInfo{
			Message: "Two tasks in the pool share the same ID.",
			Action:  "Give every task in the specs file a unique ID.",
		},
	},
	{
		err: ErrSpecsFileMissing,
		info: ErrorInfo{
			Message: "The specs file does not exist.",
			Action:  "Create .polaris/specs.yaml or point --specs at your specs file.",
		},
	},
	{
		err: ErrSpecsParseError,
		info: ErrorInfo{
			Message: "The specs file has invalid YAML syntax.",
			Action:  "Check the specs file for YAML syntax errors.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNotFound,
		info: ErrorInfo{
			Message: "Configuration file not found.",
			Action:  "Create a .polaris/config.yaml file in your project.",
		},
	},
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure .polaris/config.yaml exists and is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidRouting,
		info: ErrorInfo{
			Message: "Invalid routing configuration.",
			Action:  "Check the 'routing' section in .polaris/config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidAgents,
		info: ErrorInfo{
			Message: "Invalid agents configuration.",
			Action:  "Check the 'agents' section in .polaris/config.yaml for invalid values.",
		},
	},
	{
		err: ErrInvalidDuration,
		info: ErrorInfo{
			Message: "Invalid duration format.",
			Action:  "Use formats like '30s', '5m', '1h' for durations.",
		},
	},
	{
		err: ErrValueOutOfRange,
		info: ErrorInfo{
			Message: "Value is outside the allowed range.",
			Action:  "Check the documentation for valid value ranges.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was not provided.",
			Action:  "Provide the required value and try again.",
		},
	},

	// ===================
	// CLI
	// ===================
	{
		err: ErrInvalidWorkload,
		info: ErrorInfo{
			Message: "A workload argument could not be parsed.",
			Action:  "Use the form agent=hours, e.g. --workload backend-1=12.5.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "An invalid output format was specified.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrUnsupportedOutputFormat,
		info: ErrorInfo{
			Message: "The requested output format is not supported.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrUserInputRequired,
		info: ErrorInfo{
			Message: "This operation requires user input.",
			Action:  "Run in an interactive terminal or provide required flags.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},
	{
		err: ErrConflictingFlags,
		info: ErrorInfo{
			Message: "The specified flags cannot be used together.",
			Action:  "Check the command help for valid flag combinations.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	// Fast path: O(1) lookup for direct sentinel errors
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	// Slow path: errors.Is() for wrapped errors
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
