// Package config provides configuration management for Polaris with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest precedence
// first):
//  1. Environment variables (POLARIS_* prefix)
//  2. Project config (.polaris/config.yaml)
//  3. Global config (~/.polaris/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for Polaris.
type Config struct {
	// Routing contains tuning values for the recommendation engine.
	Routing RoutingConfig `yaml:"routing" mapstructure:"routing"`

	// Agents maps agent type to its capability definition. An empty map is
	// valid: matching falls back to permissive defaults for every agent.
	Agents map[string]AgentConfig `yaml:"agents" mapstructure:"agents"`

	// Keywords maps a task keyword to the agent types it hints at, extending
	// the built-in specialization matching vocabulary.
	// Example: {"payments": ["billing-specialist"]}
	Keywords map[string][]string `yaml:"keywords" mapstructure:"keywords"`
}

// RoutingConfig contains tuning values for the recommendation engine.
type RoutingConfig struct {
	// SpecsPath is the location of the YAML spec pool, relative to the
	// project root unless absolute.
	// Default: ".polaris/specs.yaml"
	SpecsPath string `yaml:"specs_path" mapstructure:"specs_path"`

	// MaxWorkloadHours is the per-agent workload ceiling used by the
	// workload validator when a call supplies no explicit maximum.
	// Default: 40
	MaxWorkloadHours float64 `yaml:"max_workload_hours" mapstructure:"max_workload_hours"`

	// CacheTTL is how long a recommendation result stays valid in the
	// result cache. Identical requests inside the window are served from
	// cache without recomputation.
	// Default: 5 minutes
	CacheTTL time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`

	// SlowCallThreshold is the latency target for one recommendation call.
	// Calls exceeding it are logged at warn level.
	// Default: 200 milliseconds
	SlowCallThreshold time.Duration `yaml:"slow_call_threshold" mapstructure:"slow_call_threshold"`

	// MaxAlternatives is the number of runner-up tasks reported alongside
	// the top recommendation.
	// Default: 3
	MaxAlternatives int `yaml:"max_alternatives" mapstructure:"max_alternatives"`
}

// AgentConfig declares the capabilities of one agent type. Field names
// follow the capability configuration schema: context_requirements lists
// the context capabilities the agent satisfies, specialization_areas its
// specialization keywords.
type AgentConfig struct {
	// ContextRequirements lists the context capabilities this agent
	// satisfies (e.g. "api", "data-models").
	ContextRequirements []string `yaml:"context_requirements" mapstructure:"context_requirements"`

	// SpecializationAreas lists the agent's specialization keywords
	// (e.g. "schema migration", "react").
	SpecializationAreas []string `yaml:"specialization_areas" mapstructure:"specialization_areas"`
}
