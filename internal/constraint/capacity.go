package constraint

import (
	"fmt"

	"github.com/specdriven/polaris/internal/domain"
)

// CapacityValidator checks system-level capacity: whether taking the task
// would push total committed hours past the declared plan.
type CapacityValidator struct{}

// Name implements Validator.
func (v *CapacityValidator) Name() string { return "capacity" }

// Check compares projected utilization against the capacity plan. The check
// is skipped when no plan is supplied or the plan declares no total hours.
func (v *CapacityValidator) Check(task *domain.Task, _ string, params Params) domain.CheckResult {
	result := domain.CheckResult{Name: v.Name(), Valid: true, Multiplier: 1.0}

	plan := params.Constraints.Capacity
	if plan == nil || plan.TotalHours <= 0 {
		return result
	}

	utilization := (plan.CommittedHours + task.EstimatedHours) / plan.TotalHours
	switch {
	case utilization > 1.0:
		result.Valid = false
		result.Multiplier = 0.1
		result.Violations = append(result.Violations, fmt.Sprintf(
			"projected utilization %.0f%% exceeds system capacity of %.1fh", utilization*100, plan.TotalHours))
	case utilization > 0.9:
		result.Multiplier = 0.8
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"projected utilization %.0f%% is above 90%% of system capacity", utilization*100))
	case utilization > 0.8:
		result.Multiplier = 0.9
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"projected utilization %.0f%% is above 80%% of system capacity", utilization*100))
	}

	return result
}
