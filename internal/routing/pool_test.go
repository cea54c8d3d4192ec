package routing

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/domain"
)

func TestBuildPool_DenormalizesSpecFields(t *testing.T) {
	t.Parallel()

	specList := []domain.Spec{
		{
			ID:       "SPEC-AUTH",
			Title:    "Authentication overhaul",
			Status:   constants.SpecStatusActive,
			Priority: constants.PriorityP0,
			Phase:    "PHASE-1A",
			Tasks: []domain.Task{
				{ID: "TASK-1", Title: "Add login endpoint"},
			},
		},
	}

	p := buildPool(specList, zerolog.Nop())
	require.Equal(t, 1, p.size())

	task, ok := p.task("TASK-1")
	require.True(t, ok)
	assert.Equal(t, "SPEC-AUTH", task.SpecID)
	assert.Equal(t, "Authentication overhaul", task.SpecTitle)
	assert.Equal(t, constants.PriorityP0, task.SpecPriority)
	assert.Equal(t, constants.SpecStatusActive, task.SpecStatus)
	assert.Equal(t, "PHASE-1A", task.SpecPhase)
}

func TestBuildPool_SkipsTasksWithoutID(t *testing.T) {
	t.Parallel()

	specList := []domain.Spec{
		{
			ID: "SPEC-A",
			Tasks: []domain.Task{
				{Title: "forgot the id"},
				{ID: "TASK-1", Title: "kept"},
			},
		},
	}

	p := buildPool(specList, zerolog.Nop())
	require.Equal(t, 1, p.size())

	_, ok := p.task("TASK-1")
	assert.True(t, ok)
}

func TestBuildPool_KeepsFirstDuplicateTaskID(t *testing.T) {
	t.Parallel()

	specList := []domain.Spec{
		{ID: "SPEC-A", Tasks: []domain.Task{{ID: "TASK-1", Title: "original"}}},
		{ID: "SPEC-B", Tasks: []domain.Task{{ID: "TASK-1", Title: "impostor"}}},
	}

	p := buildPool(specList, zerolog.Nop())
	require.Equal(t, 1, p.size())

	task, ok := p.task("TASK-1")
	require.True(t, ok)
	assert.Equal(t, "original", task.Title)
	assert.Equal(t, "SPEC-A", task.SpecID)
}

func TestBuildPool_IndexesEmptySpec(t *testing.T) {
	t.Parallel()

	p := buildPool([]domain.Spec{{ID: "SPEC-EMPTY"}}, zerolog.Nop())
	assert.Equal(t, 0, p.size())

	satisfied, known := p.dependencySatisfied("SPEC-EMPTY")
	assert.True(t, known)
	assert.True(t, satisfied, "a spec with no tasks has nothing left to finish")
}

func TestPool_DependencySatisfied(t *testing.T) {
	t.Parallel()

	specList := []domain.Spec{
		{
			ID: "SPEC-A",
			Tasks: []domain.Task{
				{ID: "T1", Status: constants.TaskStatusComplete},
				{ID: "T2", Status: constants.TaskStatusDone},
				{ID: "T3", Status: constants.TaskStatusReady},
			},
		},
		{
			ID: "SPEC-C",
			Tasks: []domain.Task{
				{ID: "T4", Status: constants.TaskStatusComplete},
				{ID: "T5", Status: constants.TaskStatusDone},
			},
		},
	}
	p := buildPool(specList, zerolog.Nop())

	tests := []struct {
		name          string
		id            string
		wantSatisfied bool
		wantKnown     bool
	}{
		{name: "complete task", id: "T1", wantSatisfied: true, wantKnown: true},
		{name: "done task", id: "T2", wantSatisfied: true, wantKnown: true},
		{name: "ready task is not complete", id: "T3", wantSatisfied: false, wantKnown: true},
		{name: "spec with an open task", id: "SPEC-A", wantSatisfied: false, wantKnown: true},
		{name: "spec with every task finished", id: "SPEC-C", wantSatisfied: true, wantKnown: true},
		{name: "unknown id", id: "GHOST", wantSatisfied: false, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			satisfied, known := p.dependencySatisfied(tt.id)
			assert.Equal(t, tt.wantSatisfied, satisfied)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}
