package constraint

import (
	"fmt"
	"math"
	"time"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/domain"
)

// TimeValidator checks whether the task can be finished in time: deadline
// feasibility at an 8-hour-workday pace, and declared agent availability.
type TimeValidator struct{}

// Name implements Validator.
func (v *TimeValidator) Name() string { return "time" }

// Check evaluates the deadline and agent-availability constraints. The two
// blocks are independent; the result multiplier is their product and the
// verdict requires both to pass. Days remaining are whole days (truncated),
// days needed round up from the hour estimate.
func (v *TimeValidator) Check(task *domain.Task, agentType string, params Params) domain.CheckResult {
	result := domain.CheckResult{Name: v.Name(), Valid: true, Multiplier: 1.0}

	if deadline := taskDeadline(task, params.Constraints); deadline != nil {
		daysRemaining := int(deadline.Sub(params.Now).Hours() / 24)
		daysNeeded := int(math.Ceil(task.EstimatedHours / constants.HoursPerWorkday))

		switch {
		case deadline.Before(params.Now):
			result.Valid = false
			result.Multiplier *= 0.0
			result.Violations = append(result.Violations, fmt.Sprintf(
				"deadline %s has already passed", deadline.Format("2006-01-02")))
		case daysRemaining < daysNeeded:
			result.Valid = false
			result.Multiplier *= 0.1
			result.Violations = append(result.Violations, fmt.Sprintf(
				"insufficient time before deadline: need %d days, %d remain", daysNeeded, daysRemaining))
		case daysRemaining == daysNeeded:
			result.Multiplier *= 0.8
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"deadline is tight: %d days needed with %d remaining", daysNeeded, daysRemaining))
		case daysRemaining <= 3:
			result.Multiplier *= 1.5
		}
	}

	if availability, ok := params.Constraints.AgentAvailability[agentType]; ok {
		switch {
		case !availability.Available:
			result.Valid = false
			result.Multiplier *= 0.0
			result.Violations = append(result.Violations, fmt.Sprintf(
				"%s is marked unavailable", agentType))
		case availability.Hours > 0 && availability.Hours < task.EstimatedHours:
			result.Valid = false
			result.Multiplier *= 0.1
			result.Violations = append(result.Violations, fmt.Sprintf(
				"%s has %.1fh available, task needs %.1fh", agentType, availability.Hours, task.EstimatedHours))
		}
	}

	return result
}

// taskDeadline picks the task's own deadline when declared, falling back to
// the call-level deadline constraint.
func taskDeadline(task *domain.Task, cons *domain.Constraints) *time.Time {
	if task.Deadline != nil {
		return task.Deadline
	}
	return cons.Deadline
}
