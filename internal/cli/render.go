// Package cli provides the command-line interface for Polaris.
package cli

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/specdriven/polaris/internal/domain"
	"github.com/specdriven/polaris/internal/tui"
)

// maxTitleWidth caps task titles in table cells.
const maxTitleWidth = 40

// taskTableHeaders returns the columns shared by every task listing.
func taskTableHeaders() []string {
	return []string{"TASK", "TITLE", "PRIORITY", "STATUS", "HOURS", "DUE"}
}

// taskRow renders one task as a table row matching taskTableHeaders.
func taskRow(t domain.Task) []string {
	return []string{
		t.ID,
		truncate(t.Title, maxTitleWidth),
		tui.PriorityBadge(t.Priority()),
		tui.TaskStatusLabel(t.Status),
		formatHours(t.EstimatedHours),
		formatDeadline(t.Deadline),
	}
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}

// formatHours renders an effort estimate, or "-" when the task has none.
func formatHours(hours float64) string {
	if hours <= 0 {
		return "-"
	}
	return strconv.FormatFloat(hours, 'f', -1, 64) + "h"
}

// formatDeadline renders a deadline relative to now, or "-" when unset.
func formatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return "-"
	}
	return tui.RelativeDeadline(*deadline)
}

// joinOrDash joins items for table display, or "-" when there are none.
func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
