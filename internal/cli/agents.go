// Package cli provides the command-line interface for Polaris.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/specdriven/polaris/internal/capability"
	"github.com/specdriven/polaris/internal/config"
	"github.com/specdriven/polaris/internal/domain"
	"github.com/specdriven/polaris/internal/tui"
)

// capabilitySource is the matcher surface behind the agents command.
// Used for dependency injection in tests.
type capabilitySource interface {
	Definitions() map[string]domain.AgentCapability
}

// AddAgentsCommand adds the agents command to the root command.
func AddAgentsCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Show configured agent capability definitions",
		Long: `Show the agent capability definitions loaded from configuration: the
contexts each agent type satisfies and its specialization areas.

Agent types without a definition match permissively, so an empty listing
means every agent type is eligible for every task.

Examples:
  polaris agents
  polaris agents --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAgents(cmd.Context(), cmd, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

// runAgents executes the agents command with production dependencies.
// Capability definitions come from configuration alone, so this command
// works without a readable spec pool.
func runAgents(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()
	quiet := cmd.Flag("quiet").Value.String() == "true"

	tui.CheckNoColor()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger := GetLogger()
		logger.Warn().Err(err).Msg("configuration unreadable, falling back to defaults")
		cfg = config.DefaultsOnly()
	}
	matcher := capability.NewMatcher(agentCapabilities(cfg), cfg.Keywords)

	return runAgentsWithDeps(ctx, w, output, quiet, matcher)
}

// runAgentsWithDeps executes the agents command with injected dependencies.
// This enables testing with mock implementations.
func runAgentsWithDeps(ctx context.Context, w io.Writer, output string, quiet bool, src capabilitySource) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	defs := src.Definitions()

	agentTypes := make([]string, 0, len(defs))
	for agentType := range defs {
		agentTypes = append(agentTypes, agentType)
	}
	sort.Strings(agentTypes)

	out := newOutput(w, output)
	if isJSON(out) {
		sorted := make([]domain.AgentCapability, 0, len(agentTypes))
		for _, agentType := range agentTypes {
			sorted = append(sorted, defs[agentType])
		}
		return out.JSON(sorted)
	}

	if len(defs) == 0 {
		out.Info("No agent capabilities configured; every agent type matches permissively.")
		return nil
	}

	rows := make([][]string, 0, len(agentTypes))
	for _, agentType := range agentTypes {
		def := defs[agentType]
		rows = append(rows, []string{
			agentType,
			joinOrDash(def.Contexts),
			joinOrDash(def.Specializations),
		})
	}
	out.Table([]string{"AGENT", "CONTEXTS", "SPECIALIZATIONS"}, rows)

	if !quiet {
		typeWord := "types"
		if len(agentTypes) == 1 {
			typeWord = "type"
		}
		_, _ = fmt.Fprintf(w, "\n%d agent %s configured\n", len(agentTypes), typeWord)
	}
	return nil
}
