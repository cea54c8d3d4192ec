// Package cli provides the command-line interface for Polaris.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specdriven/polaris/internal/domain"
	"github.com/specdriven/polaris/internal/errors"
	"github.com/specdriven/polaris/internal/tui"
)

// workloadLedger is the engine surface behind the workload commands.
// Used for dependency injection in tests.
type workloadLedger interface {
	Workloads() map[string]float64
	UpdateWorkload(agentType string, deltaHours float64) float64
	ResetWorkloads()
	WorkloadStats() domain.WorkloadStats
}

// workloadView is the JSON shape of 'workload show'.
type workloadView struct {
	Agents map[string]float64   `json:"agents"`
	Stats  domain.WorkloadStats `json:"stats"`
}

// newWorkloadCmd creates the parent workload command.
func newWorkloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workload",
		Short: "Manage the per-agent workload ledger",
		Long: `Commands for the engine's workload ledger: committed hours per agent.

The ledger is process-local and starts empty for each invocation. The add
and reset subcommands act on this invocation's ledger, which makes them
useful for what-if checks against validate and for embeddings that keep
the engine alive between calls.`,
		// No work of its own - parent command just displays help
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addWorkloadShowCmd(cmd)
	addWorkloadAddCmd(cmd)
	addWorkloadResetCmd(cmd)

	return cmd
}

// AddWorkloadCommand adds the workload command tree to the root command.
func AddWorkloadCommand(parent *cobra.Command) {
	parent.AddCommand(newWorkloadCmd())
}

// addWorkloadShowCmd adds the show subcommand to the workload command.
func addWorkloadShowCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show committed hours per agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkloadShow(cmd.Context(), cmd, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

// runWorkloadShow executes 'workload show' with production dependencies.
func runWorkloadShow(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()
	quiet := cmd.Flag("quiet").Value.String() == "true"

	tui.CheckNoColor()

	deps := newEngineDeps(ctx, cmd)
	return runWorkloadShowWithDeps(ctx, w, output, quiet, deps.engine)
}

// runWorkloadShowWithDeps executes 'workload show' with injected
// dependencies. This enables testing with mock implementations.
func runWorkloadShowWithDeps(
	ctx context.Context,
	w io.Writer,
	output string,
	quiet bool,
	eng workloadLedger,
) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	workloads := eng.Workloads()
	stats := eng.WorkloadStats()

	out := newOutput(w, output)
	if isJSON(out) {
		if workloads == nil {
			workloads = map[string]float64{}
		}
		return out.JSON(workloadView{Agents: workloads, Stats: stats})
	}

	if len(workloads) == 0 {
		out.Info("No workload recorded for any agent.")
		return nil
	}

	agents := make([]string, 0, len(workloads))
	for agent := range workloads {
		agents = append(agents, agent)
	}
	sort.Strings(agents)

	rows := make([][]string, 0, len(agents))
	for _, agent := range agents {
		rows = append(rows, []string{agent, fmt.Sprintf("%.1f", workloads[agent])})
	}
	out.Table([]string{"AGENT", "HOURS"}, rows)

	if !quiet {
		agentWord := "agents"
		if stats.AgentCount == 1 {
			agentWord = "agent"
		}
		_, _ = fmt.Fprintf(w, "\n%d %s, %.1f hours committed, %.1f mean\n",
			stats.AgentCount, agentWord, stats.TotalHours, stats.MeanHours)
	}
	return nil
}

// addWorkloadAddCmd adds the add subcommand to the workload command.
func addWorkloadAddCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <agent> <hours>",
		Short: "Add committed hours to an agent",
		Long: `Add committed hours to an agent's ledger entry and print the new
total. Negative hours release committed time; the ledger never goes
below zero.

Examples:
  polaris workload add backend 4
  polaris workload add backend -2.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkloadAdd(cmd.Context(), cmd, os.Stdout, args[0], args[1])
		},
	}
	parent.AddCommand(cmd)
}

// runWorkloadAdd executes 'workload add' with production dependencies.
func runWorkloadAdd(ctx context.Context, cmd *cobra.Command, w io.Writer, agent, rawHours string) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()

	tui.CheckNoColor()

	deps := newEngineDeps(ctx, cmd)
	return runWorkloadAddWithDeps(ctx, w, output, agent, rawHours, deps.engine)
}

// runWorkloadAddWithDeps executes 'workload add' with injected
// dependencies. This enables testing with mock implementations.
func runWorkloadAddWithDeps(
	ctx context.Context,
	w io.Writer,
	output string,
	agent, rawHours string,
	eng workloadLedger,
) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	agent = strings.TrimSpace(agent)
	if agent == "" {
		return errors.ErrAgentTypeRequired
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(rawHours), 64)
	if err != nil {
		return fmt.Errorf("%w: hours %q is not a number", errors.ErrInvalidArgument, rawHours)
	}

	updated := eng.UpdateWorkload(agent, hours)

	out := newOutput(w, output)
	if isJSON(out) {
		return out.JSON(struct {
			Agent string  `json:"agent"`
			Hours float64 `json:"hours"`
		}{Agent: agent, Hours: updated})
	}

	out.Success(fmt.Sprintf("%s now has %.1f committed hours", agent, updated))
	return nil
}

// addWorkloadResetCmd adds the reset subcommand to the workload command.
func addWorkloadResetCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero every agent's committed hours",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkloadReset(cmd.Context(), cmd, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

// runWorkloadReset executes 'workload reset' with production dependencies.
func runWorkloadReset(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()

	tui.CheckNoColor()

	deps := newEngineDeps(ctx, cmd)
	return runWorkloadResetWithDeps(ctx, w, output, deps.engine)
}

// runWorkloadResetWithDeps executes 'workload reset' with injected
// dependencies. This enables testing with mock implementations.
func runWorkloadResetWithDeps(ctx context.Context, w io.Writer, output string, eng workloadLedger) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	eng.ResetWorkloads()

	out := newOutput(w, output)
	out.Success("Workload ledger reset.")
	return nil
}
