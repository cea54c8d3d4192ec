package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Output format selectors accepted by NewOutput.
const (
	// FormatAuto selects TTY output on terminals and JSON otherwise.
	FormatAuto = ""
	// FormatText forces styled terminal output.
	FormatText = "text"
	// FormatJSON forces structured JSON output.
	FormatJSON = "json"
)

// Output provides methods for structured command output.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error message.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Table prints tabular data.
	Table(headers []string, rows [][]string)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
}

// NewOutput creates the appropriate output for the requested format.
// FormatAuto picks TTYOutput when w is a terminal and JSONOutput otherwise.
func NewOutput(w io.Writer, format string) Output {
	switch format {
	case FormatJSON:
		return NewJSONOutput(w)
	case FormatText:
		return NewTTYOutput(w)
	default:
		if isTTY(w) {
			return NewTTYOutput(w)
		}
		return NewJSONOutput(w)
	}
}

// isTTY reports whether w is attached to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
