// Package cli provides the command-line interface for Polaris.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/specdriven/polaris/internal/capability"
	"github.com/specdriven/polaris/internal/config"
	"github.com/specdriven/polaris/internal/domain"
	"github.com/specdriven/polaris/internal/routing"
	"github.com/specdriven/polaris/internal/specs"
)

// engineDeps bundles everything a command needs to serve one invocation:
// the primed routing engine, the capability matcher behind it, and the
// configuration that shaped both.
type engineDeps struct {
	engine  *routing.Engine
	matcher *capability.Matcher
	cfg     *config.Config
}

// buildEngine loads configuration, opens the spec repository, and primes a
// routing engine for one CLI invocation. An unreadable configuration
// degrades to built-in defaults with a logged warning; a spec pool that
// cannot be loaded is fatal.
func buildEngine(ctx context.Context, cmd *cobra.Command) (*engineDeps, error) {
	deps := newEngineDeps(ctx, cmd)

	if err := deps.engine.Initialize(ctx); err != nil {
		return nil, err
	}

	logger := GetLogger()
	logger.Debug().
		Int("agents", len(deps.cfg.Agents)).
		Msg("routing engine ready")

	return deps, nil
}

// newEngineDeps wires configuration, spec repository, matcher, and engine
// without priming the pool. Ledger and cache commands work on an unprimed
// engine, so they never require a readable spec pool.
func newEngineDeps(ctx context.Context, cmd *cobra.Command) *engineDeps {
	logger := GetLogger()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("configuration unreadable, falling back to defaults")
		cfg = config.DefaultsOnly()
	}

	repo := specs.NewFileRepository(resolveSpecsPath(cmd, cfg))
	matcher := capability.NewMatcher(agentCapabilities(cfg), cfg.Keywords)

	eng := routing.New(repo, matcher, routing.Config{
		CacheTTL:          cfg.Routing.CacheTTL,
		SlowCallThreshold: cfg.Routing.SlowCallThreshold,
		MaxAlternatives:   cfg.Routing.MaxAlternatives,
	}, logger)

	return &engineDeps{engine: eng, matcher: matcher, cfg: cfg}
}

// resolveSpecsPath picks the spec pool location: the --specs flag wins,
// then the configured routing.specs_path, then the project default.
func resolveSpecsPath(cmd *cobra.Command, cfg *config.Config) string {
	if flag := cmd.Flag("specs"); flag != nil && flag.Value.String() != "" {
		return flag.Value.String()
	}
	if cfg.Routing.SpecsPath != "" {
		return cfg.Routing.SpecsPath
	}
	return config.DefaultSpecsPath()
}

// agentCapabilities converts configured agent entries into the capability
// definitions the matcher consumes, keyed by agent type.
func agentCapabilities(cfg *config.Config) map[string]domain.AgentCapability {
	caps := make(map[string]domain.AgentCapability, len(cfg.Agents))
	for agentType, agent := range cfg.Agents {
		caps[agentType] = domain.AgentCapability{
			AgentType:       agentType,
			Contexts:        agent.ContextRequirements,
			Specializations: agent.SpecializationAreas,
		}
	}
	return caps
}

// maxWorkloadOrDefault returns the per-agent workload ceiling for a call:
// the explicit flag value when positive, otherwise the configured default.
func maxWorkloadOrDefault(flagValue float64, cfg *config.Config) float64 {
	if flagValue > 0 {
		return flagValue
	}
	return cfg.Routing.MaxWorkloadHours
}
