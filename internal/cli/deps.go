// Package cli provides the command-line interface for Polaris.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/specdriven/polaris/internal/domain"
	"github.com/specdriven/polaris/internal/tui"
)

// chainResolver is the engine surface behind the deps command.
// Used for dependency injection in tests.
type chainResolver interface {
	Task(taskID string) (domain.Task, error)
	DependencyChain(taskID string) (domain.DependencyChain, error)
}

// AddDepsCommand adds the deps command to the root command.
func AddDepsCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "deps <task-id>",
		Short: "Show a task's dependency chain",
		Long: `Show what a task depends on and what depends on it. Dependencies that
are still incomplete are flagged as blocking; dependents are flagged when
this task is what holds them back.

Examples:
  polaris deps TASK-101
  polaris deps TASK-101 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeps(cmd.Context(), cmd, os.Stdout, args[0])
		},
	}
	parent.AddCommand(cmd)
}

// runDeps executes the deps command with production dependencies.
func runDeps(ctx context.Context, cmd *cobra.Command, w io.Writer, taskID string) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()

	tui.CheckNoColor()

	deps, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}

	return runDepsWithDeps(ctx, w, output, taskID, deps.engine)
}

// runDepsWithDeps executes the deps command with injected dependencies.
// This enables testing with mock implementations.
func runDepsWithDeps(ctx context.Context, w io.Writer, output, taskID string, eng chainResolver) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	task, err := eng.Task(taskID)
	if err != nil {
		return err
	}

	chain, err := eng.DependencyChain(taskID)
	if err != nil {
		return err
	}

	out := newOutput(w, output)
	if isJSON(out) {
		return out.JSON(chain)
	}

	out.Info(fmt.Sprintf("%s: %s", task.ID, truncate(task.Title, maxTitleWidth)))

	if len(chain.Dependencies) == 0 && len(chain.Dependents) == 0 {
		_, _ = fmt.Fprintln(w, "No dependencies and no dependents.")
		return nil
	}

	blockedBy := stringSet(chain.BlockedBy)
	blocking := stringSet(chain.Blocking)

	rows := make([][]string, 0, len(chain.Dependencies)+len(chain.Dependents))
	for _, dep := range chain.Dependencies {
		state := "satisfied"
		if blockedBy[dep] {
			state = "blocking"
		}
		rows = append(rows, []string{"depends on", dep, state})
	}
	for _, dependent := range chain.Dependents {
		state := "-"
		if blocking[dependent] {
			state = "waiting on this task"
		}
		rows = append(rows, []string{"dependent", dependent, state})
	}
	out.Table([]string{"RELATION", "TASK", "STATE"}, rows)

	return nil
}

// stringSet builds a membership set from a list of ids.
func stringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
