// Package cli provides the command-line interface for Polaris.
package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/errors"
)

// TestParsePriority tests priority flag parsing.
func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected constants.Priority
		wantErr  bool
	}{
		{"P0", constants.PriorityP0, false},
		{"p0", constants.PriorityP0, false},
		{" P1 ", constants.PriorityP1, false},
		{"p3", constants.PriorityP3, false},
		{"P4", "", true},
		{"critical", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := parsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestParseSpecStatus tests spec-status flag parsing.
func TestParseSpecStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected constants.SpecStatus
		wantErr  bool
	}{
		{"active", constants.SpecStatusActive, false},
		{"Active", constants.SpecStatusActive, false},
		{" ready ", constants.SpecStatusReady, false},
		{"backlog", constants.SpecStatusBacklog, false},
		{"done", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := parseSpecStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestParseWorkloads tests agent=hours pair parsing.
func TestParseWorkloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pairs    []string
		expected map[string]float64
		wantErr  bool
	}{
		{
			name:     "empty input returns nil map",
			pairs:    nil,
			expected: nil,
		},
		{
			name:     "single pair",
			pairs:    []string{"backend=38"},
			expected: map[string]float64{"backend": 38},
		},
		{
			name:     "multiple pairs with fractions and spaces",
			pairs:    []string{"backend=38.5", " frontend = 12 "},
			expected: map[string]float64{"backend": 38.5, "frontend": 12},
		},
		{
			name:    "missing separator",
			pairs:   []string{"backend38"},
			wantErr: true,
		},
		{
			name:    "empty agent",
			pairs:   []string{"=12"},
			wantErr: true,
		},
		{
			name:    "non-numeric hours",
			pairs:   []string{"backend=lots"},
			wantErr: true,
		},
		{
			name:    "negative hours",
			pairs:   []string{"backend=-3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseWorkloads(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidWorkload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestConstraintFlags_Constraints tests flag-to-constraints conversion.
func TestConstraintFlags_Constraints(t *testing.T) {
	t.Parallel()

	flags := &constraintFlags{
		Priorities:      []string{"p0", "P1"},
		Phases:          []string{"PHASE-1A"},
		SpecStatuses:    []string{"active"},
		AgentTypes:      []string{"backend"},
		MaxWorkload:     35,
		Workloads:       []string{"backend=20"},
		AllowViolations: true,
	}

	cons, err := flags.constraints()
	require.NoError(t, err)

	assert.Equal(t, []constants.Priority{constants.PriorityP0, constants.PriorityP1}, cons.Priorities)
	assert.Equal(t, []string{"PHASE-1A"}, cons.Phases)
	assert.Equal(t, []constants.SpecStatus{constants.SpecStatusActive}, cons.SpecStatuses)
	assert.Equal(t, []string{"backend"}, cons.AgentTypes)
	assert.InDelta(t, 35.0, cons.MaxWorkloadHours, 1e-9)
	assert.Equal(t, map[string]float64{"backend": 20}, cons.AgentWorkloads)
	assert.True(t, cons.AllowViolations)
}

// TestConstraintFlags_Constraints_RejectsBadValues tests conversion failures.
func TestConstraintFlags_Constraints_RejectsBadValues(t *testing.T) {
	t.Parallel()

	_, err := (&constraintFlags{Priorities: []string{"P9"}}).constraints()
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = (&constraintFlags{SpecStatuses: []string{"shipped"}}).constraints()
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = (&constraintFlags{Workloads: []string{"backend"}}).constraints()
	require.ErrorIs(t, err, errors.ErrInvalidWorkload)
}

// TestAddConstraintFlags tests that the shared filter flags register.
func TestAddConstraintFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	flags := &constraintFlags{}
	addConstraintFlags(cmd, flags)

	for _, name := range []string{"priority", "phase", "spec-status", "agent-type", "max-workload", "workload", "allow-violations"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should be registered", name)
	}
}
