// Package constraint validates (task, agent type) assignments against
// caller-supplied constraints.
//
// Five independent validators — workload, skill, time, resource, capacity —
// each produce a pass/fail verdict, violation and warning messages, and a
// score multiplier. The engine composes them: the aggregate is valid only if
// every validator passes, the aggregate multiplier is the product of the
// individual multipliers, and messages are concatenated in validator order.
// Constraint violations are structured output for the caller to act on, not
// errors; validation itself never fails.
package constraint

import (
	"time"

	"github.com/specdriven/polaris/internal/domain"
)

// CapabilitySource looks up the capability definition for an agent type.
// Satisfied by capability.Matcher.
type CapabilitySource interface {
	Definition(agentType string) (domain.AgentCapability, bool)
}

// Params carries the per-call inputs shared by all validators: the caller's
// constraint set, the agent's committed hours from the workload ledger, and
// the current time for deadline feasibility.
type Params struct {
	Constraints    *domain.Constraints
	CommittedHours float64
	Now            time.Time
}

// Validator checks one constraint dimension for a (task, agent type) pair.
type Validator interface {
	// Name identifies the validator in check results and logs.
	Name() string

	// Check evaluates the constraint. It always returns a result; a failed
	// constraint is a structured verdict, not an error.
	Check(task *domain.Task, agentType string, params Params) domain.CheckResult
}

// Engine runs the five validators and composes their results.
type Engine struct {
	validators []Validator
}

// NewEngine creates a validation engine with the standard validator set, in
// the order their messages are reported: workload, skill, time, resource,
// capacity.
func NewEngine(capabilities CapabilitySource) *Engine {
	return &Engine{
		validators: []Validator{
			&WorkloadValidator{},
			&SkillValidator{capabilities: capabilities},
			&TimeValidator{},
			&ResourceValidator{},
			&CapacityValidator{},
		},
	}
}

// Validate runs every validator and aggregates their verdicts. The report
// is valid only when all validators pass; its multiplier is the product of
// the individual multipliers.
func (e *Engine) Validate(task *domain.Task, agentType string, params Params) domain.ValidationReport {
	if params.Constraints == nil {
		params.Constraints = &domain.Constraints{}
	}

	report := domain.ValidationReport{
		Valid:      true,
		Multiplier: 1.0,
	}

	for _, validator := range e.validators {
		check := validator.Check(task, agentType, params)
		report.Checks = append(report.Checks, check)

		if !check.Valid {
			report.Valid = false
		}
		report.Multiplier *= check.Multiplier
		report.Violations = append(report.Violations, check.Violations...)
		report.Warnings = append(report.Warnings, check.Warnings...)
	}

	return report
}
