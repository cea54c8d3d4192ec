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

// recommender is the engine surface the next command consumes.
// Used for dependency injection in tests.
type recommender interface {
	NextTask(ctx context.Context, agentType string, cons *domain.Constraints) (*domain.Recommendation, error)
	NextTasks(ctx context.Context, agentType string, limit int, cons *domain.Constraints) ([]domain.Task, error)
}

// nextOptions carries the next command's flag values.
type nextOptions struct {
	Agent   string
	Limit   int
	Filters constraintFlags
}

// AddNextCommand adds the next command to the root command.
func AddNextCommand(parent *cobra.Command) {
	opts := &nextOptions{}

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Recommend the next task for an agent",
		Long: `Recommend which task the given agent type should pick up next.

The recommendation honors dependency order, agent capabilities, and any
constraint filters supplied on the command line. Identical requests inside
the cache TTL return the same result.

Examples:
  polaris next --agent backend                    # Best task for backend agents
  polaris next --agent backend --limit 5          # Top five ranked tasks
  polaris next --agent frontend --priority P0,P1  # Critical and high only
  polaris next --agent backend --workload backend=38 --allow-violations`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNext(cmd.Context(), cmd, os.Stdout, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Agent, "agent", "a", "", "agent type to recommend for")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 1, "number of ranked tasks to return")
	addConstraintFlags(cmd, &opts.Filters)

	parent.AddCommand(cmd)
}

// runNext executes the next command with production dependencies.
func runNext(ctx context.Context, cmd *cobra.Command, w io.Writer, opts *nextOptions) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Get flags
	output := cmd.Flag("output").Value.String()
	quiet := cmd.Flag("quiet").Value.String() == "true"

	// Respect NO_COLOR
	tui.CheckNoColor()

	deps, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}
	opts.Filters.MaxWorkload = maxWorkloadOrDefault(opts.Filters.MaxWorkload, deps.cfg)

	return runNextWithDeps(ctx, w, output, quiet, opts, deps.engine)
}

// runNextWithDeps executes the next command with injected dependencies.
// This enables testing with mock implementations.
func runNextWithDeps(
	ctx context.Context,
	w io.Writer,
	output string,
	quiet bool,
	opts *nextOptions,
	eng recommender,
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

	out := newOutput(w, output)

	if opts.Limit > 1 {
		tasks, err := eng.NextTasks(ctx, opts.Agent, opts.Limit, cons)
		if err != nil {
			return err
		}
		return renderRankedTasks(w, out, opts.Agent, tasks, quiet)
	}

	rec, err := eng.NextTask(ctx, opts.Agent, cons)
	if err != nil {
		return err
	}
	return renderRecommendation(w, out, rec, quiet)
}

// renderRecommendation writes a single recommendation: the top task with
// its reasoning, the runner-up alternatives, and the candidate funnel.
func renderRecommendation(w io.Writer, out tui.Output, rec *domain.Recommendation, quiet bool) error {
	if isJSON(out) {
		return out.JSON(rec)
	}

	if rec.Task == nil {
		out.Warning(rec.Reasoning)
		return nil
	}

	out.Success(fmt.Sprintf("%s: %s", rec.Task.ID, rec.Task.Title))
	_, _ = fmt.Fprintf(w, "  Priority: %s   Status: %s   Estimate: %s\n",
		tui.PriorityBadge(rec.Task.Priority()),
		tui.TaskStatusLabel(rec.Task.Status),
		formatHours(rec.Task.EstimatedHours))
	if rec.Task.Deadline != nil {
		_, _ = fmt.Fprintf(w, "  Deadline: %s\n", tui.RelativeDeadline(*rec.Task.Deadline))
	}
	_, _ = fmt.Fprintf(w, "  Reasoning: %s\n", rec.Reasoning)

	if len(rec.Alternatives) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Alternatives:")
		rows := make([][]string, 0, len(rec.Alternatives))
		for _, alt := range rec.Alternatives {
			rows = append(rows, taskRow(alt))
		}
		out.Table(taskTableHeaders(), rows)
	}

	if !quiet {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, recommendationFooter(rec))
	}
	return nil
}

// recommendationFooter summarizes the candidate funnel with correct grammar.
func recommendationFooter(rec *domain.Recommendation) string {
	taskWord := "tasks"
	if rec.AvailableCount == 1 {
		taskWord = "task"
	}
	return fmt.Sprintf("%d %s available, %d eligible (request %s)",
		rec.AvailableCount, taskWord, rec.EligibleCount, rec.RequestID)
}

// renderRankedTasks writes the --limit form: the ranked candidates, best
// first, as one table.
func renderRankedTasks(w io.Writer, out tui.Output, agentType string, tasks []domain.Task, quiet bool) error {
	if isJSON(out) {
		if tasks == nil {
			tasks = []domain.Task{}
		}
		return out.JSON(tasks)
	}

	if len(tasks) == 0 {
		out.Warning(fmt.Sprintf("No tasks to rank for %s.", agentType))
		return nil
	}

	headers := append([]string{"RANK"}, taskTableHeaders()...)
	rows := make([][]string, 0, len(tasks))
	for i, task := range tasks {
		rows = append(rows, append([]string{fmt.Sprintf("%d", i+1)}, taskRow(task)...))
	}
	out.Table(headers, rows)

	if !quiet {
		taskWord := "tasks"
		if len(tasks) == 1 {
			taskWord = "task"
		}
		_, _ = fmt.Fprintf(w, "\n%d %s ranked for %s\n", len(tasks), taskWord, agentType)
	}
	return nil
}
