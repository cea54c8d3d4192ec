package constraint

import (
	"fmt"

	"github.com/specdriven/polaris/internal/capability"
	"github.com/specdriven/polaris/internal/domain"
)

// SkillValidator checks how well the agent's declared skills cover what the
// task asks for. Required skills are the task's context requirements plus
// its specialization requirements; agent skills are the definition's context
// capabilities plus specialization areas.
type SkillValidator struct {
	capabilities CapabilitySource
}

// Name implements Validator.
func (v *SkillValidator) Name() string { return "skill" }

// Check grades skill coverage. A missing capability definition is a warning
// with neutral scoring, never a failure — the capability configuration is
// advisory. Coverage uses the same substring/related-context heuristic as
// capability gating.
func (v *SkillValidator) Check(task *domain.Task, agentType string, _ Params) domain.CheckResult {
	result := domain.CheckResult{Name: v.Name(), Valid: true, Multiplier: 1.0}

	required := make([]string, 0, len(task.ContextRequirements)+len(task.Specializations))
	required = append(required, task.ContextRequirements...)
	required = append(required, task.Specializations...)
	if len(required) == 0 {
		return result
	}

	def, ok := v.capabilities.Definition(agentType)
	if !ok {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"no capability definition for %s; skill coverage not enforced", agentType))
		return result
	}

	provided := make([]string, 0, len(def.Contexts)+len(def.Specializations))
	provided = append(provided, def.Contexts...)
	provided = append(provided, def.Specializations...)

	matched := 0
	for _, skill := range required {
		if capability.Covers(skill, provided) {
			matched++
		}
	}
	ratio := float64(matched) / float64(len(required))

	switch {
	case ratio < 0.5:
		result.Valid = false
		result.Multiplier = 0.2
		result.Violations = append(result.Violations, fmt.Sprintf(
			"skill coverage %.2f for %s is below the 0.50 minimum (%d of %d skills)",
			ratio, agentType, matched, len(required)))
	case ratio < 0.7:
		result.Multiplier = 0.8
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"skill coverage %.2f for %s is below the 0.70 comfort threshold", ratio, agentType))
	default:
		result.Multiplier = 1.0 + (ratio-0.7)*0.5
	}

	return result
}
