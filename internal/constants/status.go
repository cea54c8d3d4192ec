package constants

// TaskStatus represents the state of a task in the routing pipeline.
// Status values use snake_case for serialization compatibility.
type TaskStatus string

// Task status constants define the states the availability filter recognizes.
// A task is assignable while ready, pending, or unset; it satisfies
// dependencies once complete or done.
const (
	// TaskStatusUnset is the zero value for tasks that never declared a status.
	// Unset tasks are treated as assignable.
	TaskStatusUnset TaskStatus = ""

	// TaskStatusReady indicates a task is available for assignment.
	TaskStatusReady TaskStatus = "ready"

	// TaskStatusPending indicates a task is queued but not yet started.
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusInProgress indicates an agent is actively working the task.
	TaskStatusInProgress TaskStatus = "in_progress"

	// TaskStatusBlocked indicates the task was explicitly parked.
	TaskStatusBlocked TaskStatus = "blocked"

	// TaskStatusComplete indicates the task finished.
	TaskStatusComplete TaskStatus = "complete"

	// TaskStatusDone is an accepted alias for a finished task.
	TaskStatusDone TaskStatus = "done"
)

// String returns the string representation of the TaskStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s TaskStatus) String() string {
	return string(s)
}

// IsAssignable reports whether a task in this status may be handed to an agent.
func (s TaskStatus) IsAssignable() bool {
	switch s {
	case TaskStatusUnset, TaskStatusReady, TaskStatusPending:
		return true
	default:
		return false
	}
}

// IsComplete reports whether a task in this status satisfies dependents.
func (s TaskStatus) IsComplete() bool {
	switch s {
	case TaskStatusComplete, TaskStatusDone:
		return true
	default:
		return false
	}
}

// SpecStatus represents the lifecycle state of a spec.
type SpecStatus string

// Spec status constants define the states the scoring engine weighs.
const (
	// SpecStatusActive indicates work on the spec is in flight.
	SpecStatusActive SpecStatus = "active"

	// SpecStatusReady indicates the spec is ready to be worked.
	SpecStatusReady SpecStatus = "ready"

	// SpecStatusBacklog indicates the spec is parked for later.
	SpecStatusBacklog SpecStatus = "backlog"
)

// String returns the string representation of the SpecStatus.
func (s SpecStatus) String() string {
	return string(s)
}

// Priority represents a task's priority band, highest first.
type Priority string

// Priority constants define the recognized priority bands.
const (
	// PriorityP0 is the critical priority band.
	PriorityP0 Priority = "P0"

	// PriorityP1 is the high priority band.
	PriorityP1 Priority = "P1"

	// PriorityP2 is the normal priority band and the default when unset.
	PriorityP2 Priority = "P2"

	// PriorityP3 is the low priority band.
	PriorityP3 Priority = "P3"
)

// PriorityDefault is applied to tasks whose spec declares no priority.
const PriorityDefault = PriorityP2

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the priority is a recognized band.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityP0, PriorityP1, PriorityP2, PriorityP3:
		return true
	}
	return false
}

// ResourceState represents the declared availability of a shared resource.
type ResourceState string

// Resource state constants define the values the resource validator recognizes.
const (
	// ResourceAvailable indicates the resource can be used freely.
	ResourceAvailable ResourceState = "available"

	// ResourceLimited indicates the resource is contended; use draws a warning.
	ResourceLimited ResourceState = "limited"

	// ResourceUnavailable indicates the resource cannot currently be used.
	ResourceUnavailable ResourceState = "unavailable"
)

// String returns the string representation of the ResourceState.
func (r ResourceState) String() string {
	return string(r)
}
