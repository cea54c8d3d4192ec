package constraint

import (
	"fmt"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/domain"
)

// ResourceValidator checks the task's required resources against the declared
// resource availability map. Resources absent from the map count as available.
type ResourceValidator struct{}

// Name implements Validator.
func (v *ResourceValidator) Name() string { return "resource" }

// Check flags unavailable resources as violations and limited resources as
// warnings. Any unavailable resource fails the check and pins the multiplier
// at 0.1 regardless of how many limited resources were also seen.
func (v *ResourceValidator) Check(task *domain.Task, _ string, params Params) domain.CheckResult {
	result := domain.CheckResult{Name: v.Name(), Valid: true, Multiplier: 1.0}

	if len(task.RequiredResources) == 0 || params.Constraints.ResourceAvailability == nil {
		return result
	}

	unavailable := 0
	for _, resource := range task.RequiredResources {
		switch params.Constraints.ResourceAvailability[resource] {
		case constants.ResourceUnavailable:
			unavailable++
			result.Violations = append(result.Violations, fmt.Sprintf(
				"required resource %s is unavailable", resource))
		case constants.ResourceLimited:
			result.Multiplier *= 0.9
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"required resource %s is limited", resource))
		}
	}

	if unavailable > 0 {
		result.Valid = false
		result.Multiplier = 0.1
	}

	return result
}
