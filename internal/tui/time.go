package tui

import (
	"fmt"
	"time"

	"github.com/specdriven/polaris/internal/clock"
)

// DefaultClock is the default clock used for time operations.
// It can be replaced in tests with a mock clock.
//
//nolint:gochecknoglobals // Package-level default for dependency injection
var DefaultClock clock.Clock = clock.RealClock{}

// RelativeDeadline formats a deadline as a human-readable relative string.
// Examples: "due now", "due in 3 hours", "due in 2 days", "1 week overdue"
func RelativeDeadline(t time.Time) string {
	return RelativeDeadlineWith(t, DefaultClock)
}

// RelativeDeadlineWith formats a deadline as a human-readable relative string
// using the provided clock. This function allows for testable time-based
// formatting.
func RelativeDeadlineWith(t time.Time, c clock.Clock) string {
	diff := t.Sub(c.Now())

	if diff < 0 {
		overdue := -diff
		switch {
		case overdue < 24*time.Hour:
			return "overdue"
		case overdue < 7*24*time.Hour:
			days := int(overdue.Hours() / 24)
			if days == 1 {
				return "1 day overdue"
			}
			return fmt.Sprintf("%d days overdue", days)
		default:
			weeks := int(overdue.Hours() / 24 / 7)
			if weeks == 1 {
				return "1 week overdue"
			}
			return fmt.Sprintf("%d weeks overdue", weeks)
		}
	}

	switch {
	case diff < time.Hour:
		return "due now"
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "due in 1 hour"
		}
		return fmt.Sprintf("due in %d hours", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "due in 1 day"
		}
		return fmt.Sprintf("due in %d days", days)
	default:
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "due in 1 week"
		}
		return fmt.Sprintf("due in %d weeks", weeks)
	}
}
