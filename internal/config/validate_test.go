package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specdriven/polaris/internal/errors"
)

func validConfig() *Config {
	return &Config{
		Routing: RoutingConfig{
			SpecsPath:         ".polaris/specs.yaml",
			MaxWorkloadHours:  40,
			CacheTTL:          5 * time.Minute,
			SlowCallThreshold: 200 * time.Millisecond,
			MaxAlternatives:   3,
		},
	}
}

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()

	err := Validate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigNil)
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_RoutingRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty specs path",
			mutate: func(c *Config) { c.Routing.SpecsPath = "  " },
		},
		{
			name:   "non-positive max workload hours",
			mutate: func(c *Config) { c.Routing.MaxWorkloadHours = 0 },
		},
		{
			name:   "non-positive cache ttl",
			mutate: func(c *Config) { c.Routing.CacheTTL = 0 },
		},
		{
			name:   "non-positive slow call threshold",
			mutate: func(c *Config) { c.Routing.SlowCallThreshold = -time.Second },
		},
		{
			name:   "negative max alternatives",
			mutate: func(c *Config) { c.Routing.MaxAlternatives = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrConfigInvalidRouting)
		})
	}
}

func TestValidate_BlankAgentKey(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Agents = map[string]AgentConfig{
		"": {ContextRequirements: []string{"api"}},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigInvalidAgents)
}

func TestValidate_EmptyAgentsMapIsValid(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Agents = map[string]AgentConfig{}

	assert.NoError(t, Validate(cfg))
}
