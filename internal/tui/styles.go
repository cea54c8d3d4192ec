// Package tui provides terminal output components for Polaris.
//
// This package provides a centralized style system using Lip Gloss for
// consistent command output. All colors use AdaptiveColor for light/dark
// terminal support.
//
// # Semantic Colors
//
// Five semantic colors are exported for use across output components:
//   - ColorPrimary (Blue): assignable and active states, primary values
//   - ColorSuccess (Green): success states, completed tasks
//   - ColorWarning (Yellow): warning states, blocked tasks
//   - ColorError (Red): error states, critical priority
//   - ColorMuted (Gray): dim/inactive states, secondary text
//
// # Status Icons
//
// Triple redundancy is maintained for all status displays: icon + color +
// text. See TaskStatusIcon for the icon mapping.
//
// # NO_COLOR Support
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR
// environment variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/specdriven/polaris/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for output styling API
var (
	// ColorPrimary is blue, used for assignable and active states and primary values.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for success states and completed tasks.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for warning states and blocked tasks.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for error states and critical priority.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for dim/inactive states and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim/faint formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// TableStyles holds lipgloss styles for table rendering.
type TableStyles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Dim    lipgloss.Style
}

// NewTableStyles creates styles for table rendering.
func NewTableStyles() *TableStyles {
	return &TableStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Cell: lipgloss.NewStyle(),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
	}
}

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	// NO_COLOR spec: If NO_COLOR exists in the environment (with any value, including empty),
	// color should be disabled.
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	// Also disable colors for dumb terminals
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// TaskStatusColors returns the semantic color definitions for task statuses.
// Uses AdaptiveColor for light/dark terminal support.
func TaskStatusColors() map[constants.TaskStatus]lipgloss.AdaptiveColor {
	return map[constants.TaskStatus]lipgloss.AdaptiveColor{
		// Assignable and active states - Blue
		constants.TaskStatusReady:      {Light: "#0087AF", Dark: "#00D7FF"},
		constants.TaskStatusPending:    {Light: "#0087AF", Dark: "#00D7FF"},
		constants.TaskStatusInProgress: {Light: "#0087AF", Dark: "#00D7FF"},

		// Parked state - Yellow
		constants.TaskStatusBlocked: {Light: "#D7AF00", Dark: "#FFD700"},

		// Finished states - Green
		constants.TaskStatusComplete: {Light: "#00875F", Dark: "#00FF87"},
		constants.TaskStatusDone:     {Light: "#00875F", Dark: "#00FF87"},

		// Undeclared status - Gray/Dim
		constants.TaskStatusUnset: {Light: "#585858", Dark: "#6C6C6C"},
	}
}

// TaskStatusIcon returns the icon/symbol for a given task status.
// Used for visual status indicators in task listings.
func TaskStatusIcon(status constants.TaskStatus) string {
	icons := map[constants.TaskStatus]string{
		constants.TaskStatusUnset:      "○", // Empty circle - assignable, no declared status
		constants.TaskStatusReady:      "○", // Empty circle - waiting for assignment
		constants.TaskStatusPending:    "○", // Empty circle - queued
		constants.TaskStatusInProgress: "●", // Filled circle - active
		constants.TaskStatusBlocked:    "⚠", // Warning - parked, needs attention
		constants.TaskStatusComplete:   "✓", // Checkmark - finished
		constants.TaskStatusDone:       "✓", // Checkmark - finished
	}
	if icon, ok := icons[status]; ok {
		return icon
	}
	return "?"
}

// TaskStatusLabel renders a status as icon + text with its semantic color.
// Undeclared statuses render as "unset" so table cells are never blank.
func TaskStatusLabel(status constants.TaskStatus) string {
	text := status.String()
	if text == "" {
		text = "unset"
	}
	label := TaskStatusIcon(status) + " " + text
	if color, ok := TaskStatusColors()[status]; ok {
		return lipgloss.NewStyle().Foreground(color).Render(label)
	}
	return label
}

// PriorityColors returns the semantic color definitions for priority bands.
// Uses AdaptiveColor for light/dark terminal support.
func PriorityColors() map[constants.Priority]lipgloss.AdaptiveColor {
	return map[constants.Priority]lipgloss.AdaptiveColor{
		constants.PriorityP0: {Light: "#AF0000", Dark: "#FF5F5F"}, // Red
		constants.PriorityP1: {Light: "#D7AF00", Dark: "#FFD700"}, // Yellow
		constants.PriorityP2: {Light: "#0087AF", Dark: "#00D7FF"}, // Blue
		constants.PriorityP3: {Light: "#585858", Dark: "#6C6C6C"}, // Gray
	}
}

// PriorityBadge renders a priority band with its semantic color.
// P0 is bolded in addition to its color.
func PriorityBadge(p constants.Priority) string {
	color, ok := PriorityColors()[p]
	if !ok {
		return p.String()
	}
	style := lipgloss.NewStyle().Foreground(color)
	if p == constants.PriorityP0 {
		style = style.Bold(true)
	}
	return style.Render(p.String())
}

// stripANSI removes ANSI escape codes from a string.
// Used to calculate visible character count (excluding color codes).
// Handles both CSI sequences (\x1b[...letter) and OSC sequences (\x1b]...ST).
func stripANSI(s string) string {
	var result strings.Builder
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if newI := trySkipANSI(runes, i); newI != i {
			i = newI
			continue
		}
		result.WriteRune(runes[i])
		i++
	}
	return result.String()
}

// trySkipANSI attempts to skip an ANSI escape sequence starting at position i.
// Returns the new position after the sequence, or i if no sequence was found.
func trySkipANSI(runes []rune, i int) int {
	if i >= len(runes) || runes[i] != '\x1b' || i+1 >= len(runes) {
		return i
	}

	next := runes[i+1]
	if next == '[' {
		return skipCSISequence(runes, i)
	}
	if next == ']' {
		return skipOSCSequence(runes, i)
	}
	return i
}

// skipCSISequence skips a CSI sequence: \x1b[...letter
func skipCSISequence(runes []rune, i int) int {
	i += 2 // skip \x1b[
	for i < len(runes) {
		c := runes[i]
		i++
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			break // CSI sequence ends with a letter
		}
	}
	return i
}

// skipOSCSequence skips an OSC sequence: \x1b]...ST (where ST is \x1b\\ or \x07)
func skipOSCSequence(runes []rune, i int) int {
	i += 2 // skip \x1b]
	for i < len(runes) {
		c := runes[i]
		if c == '\x07' {
			i++ // skip BEL terminator
			break
		}
		if c == '\x1b' && i+1 < len(runes) && runes[i+1] == '\\' {
			i += 2 // skip ST (\x1b\\)
			break
		}
		i++
	}
	return i
}

// padRight pads a string to the right to reach the target width.
// Uses visible character count (excluding ANSI escape codes) for proper width calculation.
func padRight(s string, width int) string {
	// Strip ANSI codes to get visible character count
	visible := stripANSI(s)
	runeCount := utf8.RuneCountInString(visible)
	if runeCount >= width {
		// Truncate to width runes (not bytes)
		runes := []rune(s)
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-runeCount)
}
