package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdriven/polaris/internal/domain"
)

func TestWorkloadValidator_ExceedsMaximum(t *testing.T) {
	t.Parallel()

	v := &WorkloadValidator{}
	task := &domain.Task{ID: "TASK-1", EstimatedHours: 4}
	params := Params{
		Constraints:    &domain.Constraints{MaxWorkloadHours: 40},
		CommittedHours: 38,
	}

	result := v.Check(task, "backend-developer", params)

	assert.False(t, result.Valid)
	assert.InDelta(t, 0.1, result.Multiplier, 1e-9)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "42.0")
	assert.Contains(t, result.Violations[0], "40.0")
	assert.Contains(t, result.Violations[0], "backend-developer")
}

func TestWorkloadValidator_DefaultMaximumApplies(t *testing.T) {
	t.Parallel()

	v := &WorkloadValidator{}
	task := &domain.Task{ID: "TASK-1", EstimatedHours: 4}
	params := Params{
		Constraints:    &domain.Constraints{},
		CommittedHours: 38,
	}

	result := v.Check(task, "backend-developer", params)

	assert.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "40.0")
}

func TestWorkloadValidator_Bands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		committed      float64
		estimatedHours float64
		wantValid      bool
		wantMultiplier float64
		wantWarnings   int
	}{
		{
			name:           "projected at exactly the maximum is a warning not a violation",
			committed:      36,
			estimatedHours: 4,
			wantValid:      true,
			wantMultiplier: 0.7,
			wantWarnings:   1,
		},
		{
			name:           "above 90 percent warns and penalizes",
			committed:      33,
			estimatedHours: 4,
			wantValid:      true,
			wantMultiplier: 0.7,
			wantWarnings:   1,
		},
		{
			name:           "above 80 percent penalizes without warning",
			committed:      30,
			estimatedHours: 3,
			wantValid:      true,
			wantMultiplier: 0.9,
		},
		{
			name:           "lightly loaded agent earns a bonus",
			committed:      10,
			estimatedHours: 4,
			wantValid:      true,
			wantMultiplier: 1.2,
		},
		{
			name:           "mid-range load is neutral",
			committed:      25,
			estimatedHours: 4,
			wantValid:      true,
			wantMultiplier: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := &WorkloadValidator{}
			task := &domain.Task{ID: "TASK-1", EstimatedHours: tt.estimatedHours}
			params := Params{
				Constraints:    &domain.Constraints{MaxWorkloadHours: 40},
				CommittedHours: tt.committed,
			}

			result := v.Check(task, "backend-developer", params)

			assert.Equal(t, tt.wantValid, result.Valid)
			assert.InDelta(t, tt.wantMultiplier, result.Multiplier, 1e-9)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestWorkloadValidator_Name(t *testing.T) {
	t.Parallel()

	v := &WorkloadValidator{}
	assert.Equal(t, "workload", v.Name())
}
