package domain

import (
	"time"

	"github.com/specdriven/polaris/internal/constants"
)

// Constraints carries the caller-supplied parameters for one routing call.
// Every field is optional; the zero value means "no constraints".
// Constraints participate in the result-cache key, so two calls with equal
// Constraints inside the TTL window observe the same recommendation.
//
// Example JSON representation:
//
//	{
//	    "priorities": ["P0", "P1"],
//	    "phases": ["PHASE-1A"],
//	    "max_workload_hours": 40,
//	    "agent_availability": {"backend-1": {"available": true, "hours": 6}},
//	    "resource_availability": {"staging-db": "limited"},
//	    "capacity": {"total_hours": 200, "committed_hours": 120}
//	}
type Constraints struct {
	// Priorities restricts candidates to these priority bands.
	Priorities []constants.Priority `json:"priorities,omitempty"`

	// Phases restricts candidates to tasks whose spec phase is listed.
	Phases []string `json:"phases,omitempty"`

	// AgentTypes restricts candidates to tasks pinned to these agent types
	// (tasks with no pinned type always pass).
	AgentTypes []string `json:"agent_types,omitempty"`

	// SpecStatuses restricts candidates to tasks whose spec status is listed.
	SpecStatuses []constants.SpecStatus `json:"spec_statuses,omitempty"`

	// MaxWorkloadHours is the per-agent workload ceiling for the workload
	// validator. Zero or negative falls back to the 40-hour default.
	MaxWorkloadHours float64 `json:"max_workload_hours,omitempty"`

	// AgentAvailability maps agent identifier to declared availability,
	// consulted by the time validator.
	AgentAvailability map[string]Availability `json:"agent_availability,omitempty"`

	// ResourceAvailability maps resource name to its declared state,
	// consulted by the resource validator. Resources absent from the map
	// are treated as available.
	ResourceAvailability map[string]constants.ResourceState `json:"resource_availability,omitempty"`

	// Capacity supplies system-level capacity data for the capacity
	// validator. Nil skips the capacity check.
	Capacity *CapacityPlan `json:"capacity,omitempty"`

	// Deadline is a call-level due time applied to tasks that declare none.
	Deadline *time.Time `json:"deadline,omitempty"`

	// AgentWorkloads opts in to workload-balanced scoring: a map of agent
	// type to committed hours. Empty or nil skips the balancing factor.
	AgentWorkloads map[string]float64 `json:"agent_workloads,omitempty"`

	// AllowViolations keeps constraint-invalid candidates in the ranked
	// list (at their penalized score) instead of excluding them.
	AllowViolations bool `json:"allow_violations,omitempty"`
}

// MaxWorkload returns the effective per-agent workload ceiling in hours.
func (c *Constraints) MaxWorkload() float64 {
	if c.MaxWorkloadHours > 0 {
		return c.MaxWorkloadHours
	}
	return constants.DefaultMaxWorkloadHours
}
