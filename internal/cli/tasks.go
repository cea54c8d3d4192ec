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
	"github.com/specdriven/polaris/internal/tui"
)

// availableLister is the engine surface behind 'tasks available'.
// Used for dependency injection in tests.
type availableLister interface {
	AvailableTasks(cons *domain.Constraints) ([]domain.Task, error)
}

// blockedLister is the engine surface behind 'tasks blocked'.
// Used for dependency injection in tests.
type blockedLister interface {
	BlockedTasks() ([]domain.BlockedTask, error)
}

// newTasksCmd creates the parent tasks command.
func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Inspect the task pool",
		Long: `Commands for inspecting the task pool: which tasks are available for
assignment and which cannot start, with the reasons holding them back.`,
		// No work of its own - parent command just displays help
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addTasksAvailableCmd(cmd)
	addTasksBlockedCmd(cmd)

	return cmd
}

// AddTasksCommand adds the tasks command tree to the root command.
func AddTasksCommand(parent *cobra.Command) {
	parent.AddCommand(newTasksCmd())
}

// addTasksAvailableCmd adds the available subcommand to the tasks command.
func addTasksAvailableCmd(parent *cobra.Command) {
	filters := &constraintFlags{}

	cmd := &cobra.Command{
		Use:   "available",
		Short: "List tasks available for assignment",
		Long: `List every task that can be assigned right now: assignable status and
all dependencies complete, narrowed by any filters.

Examples:
  polaris tasks available                     # Everything assignable
  polaris tasks available --priority P0       # Critical tasks only
  polaris tasks available --phase PHASE-1A --spec-status active
  polaris tasks available --output json`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTasksAvailable(cmd.Context(), cmd, os.Stdout, filters)
		},
	}
	addConstraintFlags(cmd, filters)

	parent.AddCommand(cmd)
}

// runTasksAvailable executes 'tasks available' with production dependencies.
func runTasksAvailable(ctx context.Context, cmd *cobra.Command, w io.Writer, filters *constraintFlags) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()
	quiet := cmd.Flag("quiet").Value.String() == "true"

	tui.CheckNoColor()

	deps, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}
	filters.MaxWorkload = maxWorkloadOrDefault(filters.MaxWorkload, deps.cfg)

	return runTasksAvailableWithDeps(ctx, w, output, quiet, filters, deps.engine)
}

// runTasksAvailableWithDeps executes 'tasks available' with injected
// dependencies. This enables testing with mock implementations.
func runTasksAvailableWithDeps(
	ctx context.Context,
	w io.Writer,
	output string,
	quiet bool,
	filters *constraintFlags,
	eng availableLister,
) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	cons, err := filters.constraints()
	if err != nil {
		return err
	}

	tasks, err := eng.AvailableTasks(cons)
	if err != nil {
		return err
	}

	out := newOutput(w, output)
	if isJSON(out) {
		if tasks == nil {
			tasks = []domain.Task{}
		}
		return out.JSON(tasks)
	}

	if len(tasks) == 0 {
		out.Info("No tasks available. Run 'polaris tasks blocked' to see what is waiting.")
		return nil
	}

	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, taskRow(task))
	}
	out.Table(taskTableHeaders(), rows)

	if !quiet {
		taskWord := "tasks"
		if len(tasks) == 1 {
			taskWord = "task"
		}
		_, _ = fmt.Fprintf(w, "\n%d %s available\n", len(tasks), taskWord)
	}
	return nil
}

// addTasksBlockedCmd adds the blocked subcommand to the tasks command.
func addTasksBlockedCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "blocked",
		Short: "List tasks that cannot start",
		Long: `List every task that cannot start, with the reason holding each one
back: an explicitly blocked status, an incomplete dependency, or a
dependency id that resolves to nothing.

Examples:
  polaris tasks blocked
  polaris tasks blocked --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTasksBlocked(cmd.Context(), cmd, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

// runTasksBlocked executes 'tasks blocked' with production dependencies.
func runTasksBlocked(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()
	quiet := cmd.Flag("quiet").Value.String() == "true"

	tui.CheckNoColor()

	deps, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}

	return runTasksBlockedWithDeps(ctx, w, output, quiet, deps.engine)
}

// runTasksBlockedWithDeps executes 'tasks blocked' with injected
// dependencies. This enables testing with mock implementations.
func runTasksBlockedWithDeps(
	ctx context.Context,
	w io.Writer,
	output string,
	quiet bool,
	eng blockedLister,
) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	blocked, err := eng.BlockedTasks()
	if err != nil {
		return err
	}

	out := newOutput(w, output)
	if isJSON(out) {
		if blocked == nil {
			blocked = []domain.BlockedTask{}
		}
		return out.JSON(blocked)
	}

	if len(blocked) == 0 {
		out.Success("No blocked tasks. Everything in the pool can start.")
		return nil
	}

	rows := make([][]string, 0, len(blocked))
	for _, b := range blocked {
		rows = append(rows, []string{
			b.Task.ID,
			truncate(b.Task.Title, maxTitleWidth),
			tui.TaskStatusLabel(b.Task.Status),
			strings.Join(b.Reasons, "; "),
		})
	}
	out.Table([]string{"TASK", "TITLE", "STATUS", "BLOCKED BY"}, rows)

	if !quiet {
		taskWord := "tasks"
		if len(blocked) == 1 {
			taskWord = "task"
		}
		_, _ = fmt.Fprintf(w, "\n%d %s blocked\n", len(blocked), taskWord)
	}
	return nil
}
