package constraint

import (
	"fmt"

	"github.com/specdriven/polaris/internal/domain"
)

// WorkloadValidator checks whether taking the task would push the agent's
// committed hours past the workload ceiling.
type WorkloadValidator struct{}

// Name implements Validator.
func (v *WorkloadValidator) Name() string { return "workload" }

// Check projects the agent's committed hours plus the task estimate against
// the maximum workload. Exceeding the maximum is a violation; approaching it
// earns a warning and a score penalty; a lightly loaded agent earns a bonus.
func (v *WorkloadValidator) Check(task *domain.Task, agentType string, params Params) domain.CheckResult {
	result := domain.CheckResult{Name: v.Name(), Valid: true, Multiplier: 1.0}

	maxHours := params.Constraints.MaxWorkload()
	current := params.CommittedHours
	projected := current + task.EstimatedHours

	switch {
	case projected > maxHours:
		result.Valid = false
		result.Multiplier = 0.1
		result.Violations = append(result.Violations, fmt.Sprintf(
			"projected workload %.1fh for %s exceeds maximum %.1fh", projected, agentType, maxHours))
	case projected > 0.9*maxHours:
		result.Multiplier = 0.7
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"projected workload %.1fh for %s is above 90%% of the %.1fh maximum", projected, agentType, maxHours))
	case projected > 0.8*maxHours:
		result.Multiplier = 0.9
	case current < 0.5*maxHours:
		result.Multiplier = 1.2
	}

	return result
}
