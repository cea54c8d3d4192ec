// Package domain provides shared domain types for the Polaris routing engine.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case per architecture requirements.
package domain

import (
	"time"

	"github.com/specdriven/polaris/internal/constants"
)

// Task represents a single unit of work derived from a spec.
// Tasks are read-only snapshots produced by the spec repository;
// the routing engine never mutates them. Spec-level fields
// (SpecPriority, SpecStatus, SpecPhase, ...) are denormalized onto
// each task when the pool is built so scoring never needs a join.
//
// Example JSON representation:
//
//	{
//	    "id": "TASK-101",
//	    "title": "Implement user authentication API",
//	    "status": "ready",
//	    "spec_id": "SPEC-AUTH",
//	    "spec_priority": "P0",
//	    "spec_status": "active",
//	    "spec_phase": "PHASE-1A",
//	    "agent_type": "backend-developer",
//	    "context_requirements": ["api", "security"],
//	    "depends_on": ["TASK-100"],
//	    "estimated_hours": 4
//	}
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id"`

	// Title is a human-readable summary of the work.
	Title string `json:"title"`

	// Status is the task's position in its lifecycle.
	// Unset status is treated as assignable.
	Status constants.TaskStatus `json:"status,omitempty"`

	// SpecID identifies the owning spec.
	SpecID string `json:"spec_id,omitempty"`

	// SpecTitle is the owning spec's title, carried for display and
	// keyword extraction.
	SpecTitle string `json:"spec_title,omitempty"`

	// SpecPriority is the priority band inherited from the owning spec.
	// Empty means unset; scoring falls back to the default band.
	SpecPriority constants.Priority `json:"spec_priority,omitempty"`

	// SpecStatus is the lifecycle state inherited from the owning spec.
	SpecStatus constants.SpecStatus `json:"spec_status,omitempty"`

	// SpecPhase is the roadmap phase inherited from the owning spec
	// (e.g. "PHASE-1A").
	SpecPhase string `json:"spec_phase,omitempty"`

	// AgentType optionally pins the task to one agent type. When set,
	// only that agent type may be assigned the task.
	AgentType string `json:"agent_type,omitempty"`

	// ContextRequirements lists the context capabilities an agent must
	// provide to work this task (e.g. "api", "data-models").
	ContextRequirements []string `json:"context_requirements,omitempty"`

	// Specializations lists specialization areas the task calls for.
	Specializations []string `json:"specializations,omitempty"`

	// DependsOn lists identifiers of tasks (or whole specs) that must be
	// complete before this task becomes available.
	DependsOn []string `json:"depends_on,omitempty"`

	// EstimatedHours is the effort estimate used by sizing and
	// workload/time validation. Zero means no estimate.
	EstimatedHours float64 `json:"estimated_hours,omitempty"`

	// Deadline is the optional due time for the task.
	Deadline *time.Time `json:"deadline,omitempty"`

	// RequiredResources lists shared resources the task needs
	// (e.g. "staging-db").
	RequiredResources []string `json:"required_resources,omitempty"`

	// Subtasks is the ordered checklist nested under this task.
	Subtasks []Subtask `json:"subtasks,omitempty"`
}

// Priority returns the effective priority band for scoring.
// Tasks whose spec declares no recognized priority fall back to the default.
func (t *Task) Priority() constants.Priority {
	if t.SpecPriority.IsValid() {
		return t.SpecPriority
	}
	return constants.PriorityDefault
}

// Subtask is a single checklist item nested under a task.
type Subtask struct {
	// Title describes the checklist item.
	Title string `json:"title"`

	// Done marks the item complete.
	Done bool `json:"done"`
}

// Spec is a container of tasks with its own priority, status, and phase.
// Specs are the source of record for task enrichment: every nested task
// inherits the spec's priority/status/phase when the pool is built.
//
// Example JSON representation:
//
//	{
//	    "id": "SPEC-AUTH",
//	    "title": "Authentication overhaul",
//	    "status": "active",
//	    "priority": "P0",
//	    "phase": "PHASE-1A",
//	    "tasks": [...]
//	}
type Spec struct {
	// ID is the unique identifier for the spec.
	ID string `json:"id"`

	// Title is a human-readable summary of the spec.
	Title string `json:"title"`

	// Status is the spec's lifecycle state (active, ready, backlog).
	Status constants.SpecStatus `json:"status,omitempty"`

	// Priority is the priority band applied to all nested tasks.
	Priority constants.Priority `json:"priority,omitempty"`

	// Phase is the roadmap phase label (e.g. "PHASE-1A").
	Phase string `json:"phase,omitempty"`

	// Tasks is the ordered list of work items under this spec.
	Tasks []Task `json:"tasks,omitempty"`
}
