// Package errors provides centralized error handling for Polaris.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrAgentTypeRequired indicates that a routing request arrived without
	// an agent type. Recommendations cannot be scored without one.
	ErrAgentTypeRequired = errors.New("agent type is required")

	// ErrTaskIDRequired indicates that an operation needing a task ID was
	// called with an empty one.
	ErrTaskIDRequired = errors.New("task id is required")

	// ErrTaskNotFound indicates that the requested task does not exist in the pool.
	ErrTaskNotFound = errors.New("task not found")

	// ErrSpecNotFound indicates that the requested spec does not exist in the pool.
	ErrSpecNotFound = errors.New("spec not found")

	// ErrSpecRepository indicates that the spec repository could not be read.
	ErrSpecRepository = errors.New("spec repository unavailable")

	// ErrNotInitialized indicates that the engine was used before Initialize succeeded.
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrNoTasksFound indicates that the pool holds no tasks at all.
	ErrNoTasksFound = errors.New("no tasks found")

	// ErrDuplicateTaskID indicates two tasks in the pool share the same ID.
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrSpecsFileMissing indicates the specs file does not exist.
	ErrSpecsFileMissing = errors.New("specs file not found")

	// ErrSpecsParseError indicates the specs file has invalid YAML syntax.
	ErrSpecsParseError = errors.New("specs parse error")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigNotFound indicates that the configuration file was not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalidRouting indicates an invalid routing configuration value.
	ErrConfigInvalidRouting = errors.New("invalid routing configuration")

	// ErrConfigInvalidAgents indicates an invalid agents configuration value.
	ErrConfigInvalidAgents = errors.New("invalid agents configuration")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidDuration indicates that a duration format is invalid.
	ErrInvalidDuration = errors.New("invalid duration format")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidWorkload indicates a workload argument could not be parsed.
	// Workload arguments take the form agent=hours, e.g. backend-1=12.5.
	ErrInvalidWorkload = errors.New("invalid workload specification")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrUnsupportedOutputFormat indicates that an unsupported output format was specified.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")

	// ErrUserInputRequired indicates user input is required but not provided.
	// Commands should exit with code 2 when this error is returned.
	ErrUserInputRequired = errors.New("user input required")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflictingFlags indicates that mutually exclusive flags were specified.
	ErrConflictingFlags = errors.New("conflicting flags specified")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
