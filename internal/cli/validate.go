// Package cli provides the command-line interface for Polaris.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specdriven/polaris/internal/domain"
	"github.com/specdriven/polaris/internal/errors"
	"github.com/specdriven/polaris/internal/tui"
)

// reportValidator is the engine surface behind the validate command.
// Used for dependency injection in tests.
type reportValidator interface {
	Task(taskID string) (domain.Task, error)
	ValidateConstraints(task *domain.Task, agentType string, cons *domain.Constraints) domain.ValidationReport
}

// validateOptions carries the validate command's flag values.
type validateOptions struct {
	Agent   string
	Filters constraintFlags
}

// AddValidateCommand adds the validate command to the root command.
func AddValidateCommand(parent *cobra.Command) {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <task-id>",
		Short: "Run the constraint checks for a task and agent pairing",
		Long: `Run every constraint validator (workload, skill, time, resource,
capacity) for one task and agent pairing, outside the ranking pipeline.
The report lists each check's verdict, score multiplier, and messages.

Examples:
  polaris validate TASK-101 --agent backend
  polaris validate TASK-101 --agent backend --max-workload 35
  polaris validate TASK-101 --agent backend --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, os.Stdout, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Agent, "agent", "a", "", "agent type to validate against")
	addConstraintFlags(cmd, &opts.Filters)

	parent.AddCommand(cmd)
}

// runValidate executes the validate command with production dependencies.
func runValidate(ctx context.Context, cmd *cobra.Command, w io.Writer, taskID string, opts *validateOptions) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if strings.TrimSpace(opts.Agent) == "" {
		return errors.ErrAgentTypeRequired
	}

	output := cmd.Flag("output").Value.String()

	tui.CheckNoColor()

	deps, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}
	opts.Filters.MaxWorkload = maxWorkloadOrDefault(opts.Filters.MaxWorkload, deps.cfg)

	return runValidateWithDeps(ctx, w, output, taskID, opts, deps.engine)
}

// runValidateWithDeps executes the validate command with injected
// dependencies. This enables testing with mock implementations.
func runValidateWithDeps(
	ctx context.Context,
	w io.Writer,
	output string,
	taskID string,
	opts *validateOptions,
	eng reportValidator,
) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	cons, err := opts.Filters.constraints()
	if err != nil {
		return err
	}

	task, err := eng.Task(taskID)
	if err != nil {
		return err
	}

	report := eng.ValidateConstraints(&task, opts.Agent, cons)

	out := newOutput(w, output)
	if isJSON(out) {
		return out.JSON(report)
	}

	if report.Valid {
		out.Success(fmt.Sprintf("%s passes all constraint checks for %s", task.ID, opts.Agent))
	} else {
		out.Error(fmt.Errorf("%s fails %d of %d constraint checks for %s",
			task.ID, failedChecks(report), len(report.Checks), opts.Agent))
	}

	rows := make([][]string, 0, len(report.Checks))
	for _, check := range report.Checks {
		rows = append(rows, []string{
			check.Name,
			checkVerdict(check),
			fmt.Sprintf("%.2f", check.Multiplier),
			checkNotes(check),
		})
	}
	out.Table([]string{"CHECK", "RESULT", "MULTIPLIER", "NOTES"}, rows)

	_, _ = fmt.Fprintf(w, "\nAggregate multiplier: %.2f\n", report.Multiplier)
	return nil
}

// failedChecks counts the validators that flagged a violation.
func failedChecks(report domain.ValidationReport) int {
	failed := 0
	for _, check := range report.Checks {
		if !check.Valid {
			failed++
		}
	}
	return failed
}

// checkVerdict renders one check's verdict with the matching icon.
func checkVerdict(check domain.CheckResult) string {
	switch {
	case !check.Valid:
		return "✗ fail"
	case len(check.Warnings) > 0:
		return "⚠ pass"
	default:
		return "✓ pass"
	}
}

// checkNotes joins a check's violations and warnings for table display.
func checkNotes(check domain.CheckResult) string {
	notes := make([]string, 0, len(check.Violations)+len(check.Warnings))
	notes = append(notes, check.Violations...)
	notes = append(notes, check.Warnings...)
	if len(notes) == 0 {
		return "-"
	}
	return strings.Join(notes, "; ")
}
