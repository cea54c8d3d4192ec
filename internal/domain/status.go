// Package domain provides shared domain types for the Polaris routing engine.
package domain

import "github.com/specdriven/polaris/internal/constants"

// Re-export status and priority types from the constants package.
// This allows consumers to import domain types and status types together,
// providing a unified API for working with Polaris domain objects.
//
// Example usage:
//
//	import "github.com/specdriven/polaris/internal/domain"
//
//	task := domain.Task{
//	    Status: domain.TaskStatusReady,
//	}
type (
	// TaskStatus represents the state of a task in the routing pipeline.
	TaskStatus = constants.TaskStatus

	// SpecStatus represents the lifecycle state of a spec.
	SpecStatus = constants.SpecStatus

	// Priority represents a task's priority band.
	Priority = constants.Priority

	// ResourceState represents the declared availability of a shared resource.
	ResourceState = constants.ResourceState
)

// Re-export TaskStatus constants for convenience.
// These mirror the values in internal/constants/status.go.
const (
	// TaskStatusUnset is the zero value for tasks that never declared a status.
	TaskStatusUnset = constants.TaskStatusUnset

	// TaskStatusReady indicates a task is available for assignment.
	TaskStatusReady = constants.TaskStatusReady

	// TaskStatusPending indicates a task is queued but not yet started.
	TaskStatusPending = constants.TaskStatusPending

	// TaskStatusInProgress indicates an agent is actively working the task.
	TaskStatusInProgress = constants.TaskStatusInProgress

	// TaskStatusBlocked indicates the task was explicitly parked.
	TaskStatusBlocked = constants.TaskStatusBlocked

	// TaskStatusComplete indicates the task finished.
	TaskStatusComplete = constants.TaskStatusComplete

	// TaskStatusDone is an accepted alias for a finished task.
	TaskStatusDone = constants.TaskStatusDone
)

// Re-export SpecStatus constants for convenience.
const (
	// SpecStatusActive indicates work on the spec is in flight.
	SpecStatusActive = constants.SpecStatusActive

	// SpecStatusReady indicates the spec is ready to be worked.
	SpecStatusReady = constants.SpecStatusReady

	// SpecStatusBacklog indicates the spec is parked for later.
	SpecStatusBacklog = constants.SpecStatusBacklog
)

// Re-export Priority constants for convenience.
const (
	// PriorityP0 is the critical priority band.
	PriorityP0 = constants.PriorityP0

	// PriorityP1 is the high priority band.
	PriorityP1 = constants.PriorityP1

	// PriorityP2 is the normal priority band and the default when unset.
	PriorityP2 = constants.PriorityP2

	// PriorityP3 is the low priority band.
	PriorityP3 = constants.PriorityP3
)

// Re-export ResourceState constants for convenience.
const (
	// ResourceAvailable indicates the resource can be used freely.
	ResourceAvailable = constants.ResourceAvailable

	// ResourceLimited indicates the resource is contended.
	ResourceLimited = constants.ResourceLimited

	// ResourceUnavailable indicates the resource cannot currently be used.
	ResourceUnavailable = constants.ResourceUnavailable
)
