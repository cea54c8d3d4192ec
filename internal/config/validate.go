package config

import (
	"strings"

	"github.com/specdriven/polaris/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - Routing specs path must not be empty
//   - Routing max workload hours must be positive
//   - Routing cache TTL and slow-call threshold must be positive
//   - Routing max alternatives must not be negative
//   - Agent type keys must not be blank
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateRoutingConfig(&cfg.Routing); err != nil {
		return err
	}

	return validateAgentsConfig(cfg.Agents)
}

// validateRoutingConfig checks routing-specific configuration values.
func validateRoutingConfig(cfg *RoutingConfig) error {
	if strings.TrimSpace(cfg.SpecsPath) == "" {
		return errors.Wrap(errors.ErrConfigInvalidRouting,
			"routing.specs_path must not be empty")
	}

	if cfg.MaxWorkloadHours <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidRouting,
			"routing.max_workload_hours must be positive, got %v", cfg.MaxWorkloadHours)
	}

	if cfg.CacheTTL <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidRouting,
			"routing.cache_ttl must be positive, got %s", cfg.CacheTTL)
	}

	if cfg.SlowCallThreshold <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidRouting,
			"routing.slow_call_threshold must be positive, got %s", cfg.SlowCallThreshold)
	}

	if cfg.MaxAlternatives < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidRouting,
			"routing.max_alternatives cannot be negative, got %d", cfg.MaxAlternatives)
	}

	return nil
}

// validateAgentsConfig checks the agent capability map.
func validateAgentsConfig(agents map[string]AgentConfig) error {
	for agentType := range agents {
		if strings.TrimSpace(agentType) == "" {
			return errors.Wrap(errors.ErrConfigInvalidAgents,
				"agents map contains a blank agent type key")
		}
	}
	return nil
}
