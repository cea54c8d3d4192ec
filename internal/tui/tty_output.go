package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TTYOutput provides styled terminal output using Lip Gloss.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
	table  *TableStyles
}

// NewTTYOutput creates a new TTYOutput with styled output.
// Respects the NO_COLOR environment variable via CheckNoColor().
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()

	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
		table:  NewTableStyles(),
	}
}

// Success outputs a success message with green color and ✓ icon.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error outputs an error with red color and ✗ icon.
// If the error is an ActionableError, it also displays the suggestion
// with a dim "▸ Try:" prefix for visual hierarchy.
func (o *TTYOutput) Error(err error) {
	var ae *ActionableError
	if errors.As(err, &ae) {
		_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+ae.Error()))
		if ae.Suggestion != "" {
			_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+ae.Suggestion))
		}
		return
	}
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))
}

// Warning outputs a warning message with yellow color and ⚠ icon.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info outputs an informational message with blue color and ℹ icon.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render("ℹ "+msg))
}

// Table outputs tabular data with aligned columns.
// Column widths are computed from the widest cell per column; cells may
// contain ANSI-styled content since widths use visible character counts.
func (o *TTYOutput) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				cellWidth := utf8.RuneCountInString(stripANSI(cell))
				if cellWidth > widths[i] {
					widths[i] = cellWidth
				}
			}
		}
	}

	headerParts := make([]string, 0, len(headers))
	for i, h := range headers {
		headerParts = append(headerParts, o.table.Header.Render(padRight(h, widths[i])))
	}
	_, _ = fmt.Fprintln(o.w, strings.Join(headerParts, "  "))

	for _, row := range rows {
		var rowParts []string
		for i := 0; i < len(headers); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowParts = append(rowParts, o.table.Cell.Render(padRight(cell, widths[i])))
		}
		_, _ = fmt.Fprintln(o.w, strings.Join(rowParts, "  "))
	}
}

// JSON outputs an arbitrary value as formatted JSON.
// Used when a command needs to emit structured data on a terminal.
// Returns an error if encoding fails.
func (o *TTYOutput) JSON(v any) error {
	encoder := json.NewEncoder(o.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
