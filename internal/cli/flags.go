// Package cli provides the command-line interface for Polaris.
package cli

import (
	stderrors "errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/specdriven/polaris/internal/errors"
	"github.com/specdriven/polaris/internal/tui"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
	// OutputAuto selects text on a terminal and JSON everywhere else.
	OutputAuto = "auto"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Specs overrides the spec pool location from configuration.
	Specs string
	// Output specifies the output format (text, json, or auto).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(&flags.Specs, "specs", "", "path to the YAML spec pool (overrides config)")
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json|auto)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper for configuration file and
// environment variable support. The POLARIS_ prefix is used for environment
// variables (e.g., POLARIS_OUTPUT, POLARIS_SPECS).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	if err := v.BindPFlag("specs", rootFlags.Lookup("specs")); err != nil {
		return err
	}
	if err := v.BindPFlag("output", rootFlags.Lookup("output")); err != nil {
		return err
	}
	if err := v.BindPFlag("verbose", rootFlags.Lookup("verbose")); err != nil {
		return err
	}
	if err := v.BindPFlag("quiet", rootFlags.Lookup("quiet")); err != nil {
		return err
	}

	// Enable environment variable support with POLARIS_ prefix
	v.SetEnvPrefix("POLARIS")
	v.AutomaticEnv()

	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON, OutputAuto}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// newOutput builds the terminal output for the resolved format. The auto
// format defers to TTY detection on w.
func newOutput(w io.Writer, format string) tui.Output {
	if format == OutputAuto {
		return tui.NewOutput(w, tui.FormatAuto)
	}
	return tui.NewOutput(w, format)
}

// isJSON reports whether the output renders machine-readable JSON, after
// auto-format resolution.
func isJSON(out tui.Output) bool {
	_, ok := out.(*tui.JSONOutput)
	return ok
}

// invalidInputSentinels are the error values that signal bad user input
// rather than a runtime failure. They map to ExitInvalidInput.
//
//nolint:gochecknoglobals // Pre-built mapping for exit code selection
var invalidInputSentinels = []error{
	errors.ErrInvalidOutputFormat,
	errors.ErrAgentTypeRequired,
	errors.ErrTaskIDRequired,
	errors.ErrInvalidWorkload,
	errors.ErrInvalidArgument,
	errors.ErrConflictingFlags,
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for user input
// errors (invalid flags, bad arguments), and ExitError (1) for all other errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for our custom exit code 2 error wrapper
	if errors.IsExitCode2Error(err) {
		return ExitInvalidInput
	}

	// Check for our custom invalid input errors
	for _, sentinel := range invalidInputSentinels {
		if stderrors.Is(err, sentinel) {
			return ExitInvalidInput
		}
	}

	// Check for Cobra flag parsing errors (mutually exclusive flags, unknown flags, etc.)
	errMsg := err.Error()
	if isInvalidInputError(errMsg) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag and argument validation errors.
func isInvalidInputError(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
		"arg(s)",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
