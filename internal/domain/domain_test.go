package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleTaskJSON shows the expected JSON serialization format for Task.
const exampleTaskJSON = `{
    "id": "TASK-101",
    "title": "Implement user authentication API",
    "status": "ready",
    "spec_id": "SPEC-AUTH",
    "spec_title": "Authentication overhaul",
    "spec_priority": "P0",
    "spec_status": "active",
    "spec_phase": "PHASE-1A",
    "agent_type": "backend-developer",
    "context_requirements": ["api", "security"],
    "specializations": ["go", "database"],
    "depends_on": ["TASK-100"],
    "estimated_hours": 4,
    "required_resources": ["staging-db"],
    "subtasks": [
        {"title": "Design token format", "done": true},
        {"title": "Implement refresh flow", "done": false}
    ]
}`

// TestTask_JSONSerialization verifies Task marshals to JSON with snake_case keys.
func TestTask_JSONSerialization(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	task := Task{
		ID:                  "TASK-101",
		Title:               "Implement user authentication API",
		Status:              TaskStatusReady,
		SpecID:              "SPEC-AUTH",
		SpecTitle:           "Authentication overhaul",
		SpecPriority:        PriorityP0,
		SpecStatus:          SpecStatusActive,
		SpecPhase:           "PHASE-1A",
		AgentType:           "backend-developer",
		ContextRequirements: []string{"api", "security"},
		DependsOn:           []string{"TASK-100"},
		EstimatedHours:      4,
		Deadline:            &deadline,
		RequiredResources:   []string{"staging-db"},
		Subtasks: []Subtask{
			{Title: "Design token format", Done: true},
		},
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	jsonStr := string(data)

	// Verify snake_case keys are present
	assert.Contains(t, jsonStr, `"spec_id"`)
	assert.Contains(t, jsonStr, `"spec_priority"`)
	assert.Contains(t, jsonStr, `"spec_phase"`)
	assert.Contains(t, jsonStr, `"agent_type"`)
	assert.Contains(t, jsonStr, `"context_requirements"`)
	assert.Contains(t, jsonStr, `"depends_on"`)
	assert.Contains(t, jsonStr, `"estimated_hours"`)
	assert.Contains(t, jsonStr, `"required_resources"`)

	// Verify camelCase keys are NOT present
	assert.NotContains(t, jsonStr, `"specId"`)
	assert.NotContains(t, jsonStr, `"agentType"`)
	assert.NotContains(t, jsonStr, `"contextRequirements"`)
	assert.NotContains(t, jsonStr, `"dependsOn"`)
	assert.NotContains(t, jsonStr, `"estimatedHours"`)

	// Round-trip test
	var decoded Task
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, task.ID, decoded.ID)
	assert.Equal(t, task.Status, decoded.Status)
	assert.Equal(t, task.SpecPriority, decoded.SpecPriority)
	assert.Equal(t, task.AgentType, decoded.AgentType)
	require.Len(t, decoded.Subtasks, 1)
	assert.True(t, decoded.Subtasks[0].Done)
}

// TestDeserializeExampleTaskJSON verifies we can parse the documented example JSON.
func TestDeserializeExampleTaskJSON(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(exampleTaskJSON), &task)
	require.NoError(t, err)

	assert.Equal(t, "TASK-101", task.ID)
	assert.Equal(t, TaskStatusReady, task.Status)
	assert.Equal(t, "SPEC-AUTH", task.SpecID)
	assert.Equal(t, PriorityP0, task.SpecPriority)
	assert.Equal(t, SpecStatusActive, task.SpecStatus)
	assert.Equal(t, "PHASE-1A", task.SpecPhase)
	assert.Equal(t, "backend-developer", task.AgentType)
	assert.InDelta(t, 4.0, task.EstimatedHours, 0.0001)
	require.Len(t, task.Subtasks, 2)
	assert.True(t, task.Subtasks[0].Done)
	assert.False(t, task.Subtasks[1].Done)
}

func TestTask_Priority(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected Priority
	}{
		{"declared P0 wins", Task{SpecPriority: PriorityP0}, PriorityP0},
		{"declared P3 wins", Task{SpecPriority: PriorityP3}, PriorityP3},
		{"unset falls back to default", Task{}, PriorityP2},
		{"unknown band falls back to default", Task{SpecPriority: Priority("urgent")}, PriorityP2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.Priority())
		})
	}
}

func TestConstraints_MaxWorkload(t *testing.T) {
	tests := []struct {
		name        string
		constraints Constraints
		expected    float64
	}{
		{"explicit ceiling wins", Constraints{MaxWorkloadHours: 20}, 20},
		{"zero falls back to the 40-hour default", Constraints{}, 40},
		{"negative falls back to the 40-hour default", Constraints{MaxWorkloadHours: -5}, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.constraints.MaxWorkload(), 0.0001)
		})
	}
}

// TestRecommendation_OmitemptyFields verifies optional fields are omitted when empty.
func TestRecommendation_OmitemptyFields(t *testing.T) {
	rec := Recommendation{
		RequestID:      "rec-0000abcd",
		Reasoning:      "no tasks available",
		AvailableCount: 0,
		EligibleCount:  0,
		GeneratedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		// Task, Alternatives, and Candidates are intentionally nil/empty
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	jsonStr := string(data)

	assert.NotContains(t, jsonStr, `"task"`)
	assert.NotContains(t, jsonStr, `"alternatives"`)
	assert.NotContains(t, jsonStr, `"candidates"`)
	assert.Contains(t, jsonStr, `"available_count"`)
	assert.Contains(t, jsonStr, `"eligible_count"`)
	assert.Contains(t, jsonStr, `"request_id"`)
}

// TestValidationReport_JSONSerialization verifies the nested check structure survives a round trip.
func TestValidationReport_JSONSerialization(t *testing.T) {
	report := ValidationReport{
		Valid:      false,
		Violations: []string{"workload: projected 42.0h exceeds max 40.0h"},
		Warnings:   []string{"skill: match ratio 0.60 below comfort threshold"},
		Multiplier: 0.08,
		Checks: []CheckResult{
			{Name: "workload", Valid: false, Violations: []string{"workload: projected 42.0h exceeds max 40.0h"}, Multiplier: 0.1},
			{Name: "skill", Valid: true, Warnings: []string{"skill: match ratio 0.60 below comfort threshold"}, Multiplier: 0.8},
		},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	jsonStr := string(data)
	assert.Contains(t, jsonStr, `"violations"`)
	assert.Contains(t, jsonStr, `"multiplier"`)
	assert.Contains(t, jsonStr, `"checks"`)

	var decoded ValidationReport
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.False(t, decoded.Valid)
	assert.InDelta(t, 0.08, decoded.Multiplier, 0.0001)
	require.Len(t, decoded.Checks, 2)
	assert.Equal(t, "workload", decoded.Checks[0].Name)
	assert.False(t, decoded.Checks[0].Valid)
	assert.True(t, decoded.Checks[1].Valid)
}

// TestStatusReexports verifies that status constants are properly re-exported.
func TestStatusReexports(t *testing.T) {
	// Verify TaskStatus re-exports
	assert.Equal(t, "", string(TaskStatusUnset))
	assert.Equal(t, "ready", string(TaskStatusReady))
	assert.Equal(t, "pending", string(TaskStatusPending))
	assert.Equal(t, "in_progress", string(TaskStatusInProgress))
	assert.Equal(t, "blocked", string(TaskStatusBlocked))
	assert.Equal(t, "complete", string(TaskStatusComplete))
	assert.Equal(t, "done", string(TaskStatusDone))

	// Verify SpecStatus re-exports
	assert.Equal(t, "active", string(SpecStatusActive))
	assert.Equal(t, "ready", string(SpecStatusReady))
	assert.Equal(t, "backlog", string(SpecStatusBacklog))

	// Verify Priority re-exports
	assert.Equal(t, "P0", string(PriorityP0))
	assert.Equal(t, "P3", string(PriorityP3))

	// Verify ResourceState re-exports
	assert.Equal(t, "available", string(ResourceAvailable))
	assert.Equal(t, "limited", string(ResourceLimited))
	assert.Equal(t, "unavailable", string(ResourceUnavailable))
}
