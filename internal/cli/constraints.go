// Package cli provides the command-line interface for Polaris.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/domain"
	"github.com/specdriven/polaris/internal/errors"
)

// constraintFlags collects the caller-filter flags shared by the commands
// that route or validate tasks.
type constraintFlags struct {
	// Priorities restricts candidates to these priority bands.
	Priorities []string
	// Phases restricts candidates to these spec phases.
	Phases []string
	// SpecStatuses restricts candidates to these spec statuses.
	SpecStatuses []string
	// AgentTypes restricts candidates to tasks pinned to these agent types.
	AgentTypes []string
	// MaxWorkload is the per-agent workload ceiling in hours.
	MaxWorkload float64
	// Workloads lists known agent workloads as agent=hours pairs.
	Workloads []string
	// AllowViolations keeps constraint violators in the ranking.
	AllowViolations bool
}

// addConstraintFlags registers the shared filter flags on cmd.
func addConstraintFlags(cmd *cobra.Command, flags *constraintFlags) {
	cmd.Flags().StringSliceVar(&flags.Priorities, "priority", nil, "restrict to priority bands (P0|P1|P2|P3)")
	cmd.Flags().StringSliceVar(&flags.Phases, "phase", nil, "restrict to spec phases (e.g. PHASE-1A)")
	cmd.Flags().StringSliceVar(&flags.SpecStatuses, "spec-status", nil, "restrict to spec statuses (active|ready|backlog)")
	cmd.Flags().StringSliceVar(&flags.AgentTypes, "agent-type", nil, "restrict to tasks pinned to these agent types")
	cmd.Flags().Float64Var(&flags.MaxWorkload, "max-workload", 0, "per-agent workload ceiling in hours")
	cmd.Flags().StringSliceVar(&flags.Workloads, "workload", nil, "known agent workloads as agent=hours pairs")
	cmd.Flags().BoolVar(&flags.AllowViolations, "allow-violations", false, "keep constraint violators in the ranking")
}

// constraints converts the flag values into routing constraints, rejecting
// values the engine would not recognize.
func (f *constraintFlags) constraints() (*domain.Constraints, error) {
	cons := &domain.Constraints{
		Phases:           f.Phases,
		AgentTypes:       f.AgentTypes,
		MaxWorkloadHours: f.MaxWorkload,
		AllowViolations:  f.AllowViolations,
	}

	for _, raw := range f.Priorities {
		priority, err := parsePriority(raw)
		if err != nil {
			return nil, err
		}
		cons.Priorities = append(cons.Priorities, priority)
	}

	for _, raw := range f.SpecStatuses {
		status, err := parseSpecStatus(raw)
		if err != nil {
			return nil, err
		}
		cons.SpecStatuses = append(cons.SpecStatuses, status)
	}

	workloads, err := parseWorkloads(f.Workloads)
	if err != nil {
		return nil, err
	}
	cons.AgentWorkloads = workloads

	return cons, nil
}

// parsePriority converts a flag value into a priority band, accepting
// lowercase input ("p0" and "P0" both work).
func parsePriority(raw string) (constants.Priority, error) {
	priority := constants.Priority(strings.ToUpper(strings.TrimSpace(raw)))
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: unknown priority %q (valid: P0, P1, P2, P3)", errors.ErrInvalidArgument, raw)
	}
	return priority, nil
}

// parseSpecStatus converts a flag value into a spec status.
func parseSpecStatus(raw string) (constants.SpecStatus, error) {
	status := constants.SpecStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case constants.SpecStatusActive, constants.SpecStatusReady, constants.SpecStatusBacklog:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown spec status %q (valid: active, ready, backlog)", errors.ErrInvalidArgument, raw)
	}
}

// parseWorkloads converts agent=hours pairs into the workload map consumed
// by the balancing factor. Hours must parse as a non-negative number.
func parseWorkloads(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	workloads := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		agent, rawHours, ok := strings.Cut(pair, "=")
		agent = strings.TrimSpace(agent)
		if !ok || agent == "" {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidWorkload, pair)
		}

		hours, err := strconv.ParseFloat(strings.TrimSpace(rawHours), 64)
		if err != nil || hours < 0 {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidWorkload, pair)
		}
		workloads[agent] = hours
	}
	return workloads, nil
}
