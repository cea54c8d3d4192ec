package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/errors"
)

// newViperInstance creates a new Viper instance with standard Polaris
// configuration: environment variable prefix (POLARIS_), key replacer,
// and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("POLARIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	// Routing defaults
	v.SetDefault("routing.specs_path", filepath.Join(constants.PolarisHome, constants.SpecsFileName))
	v.SetDefault("routing.max_workload_hours", constants.DefaultMaxWorkloadHours)
	v.SetDefault("routing.cache_ttl", constants.ResultCacheTTL)
	v.SetDefault("routing.slow_call_threshold", constants.SlowCallTarget)
	v.SetDefault("routing.max_alternatives", constants.MaxAlternatives)

	// Capability defaults: empty maps mean permissive matching everywhere.
	v.SetDefault("agents", map[string]any{})
	v.SetDefault("keywords", map[string][]string{})
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from
// strings such as "5m" or "200ms".
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// unmarshalAndValidate unmarshals viper config into Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (POLARIS_* prefix)
//  2. Project config (.polaris/config.yaml)
//  3. Global config (~/.polaris/config.yaml)
//  4. Built-in defaults
//
// The function returns an error only for actual configuration problems, not
// for missing config files (which are expected in many scenarios). Callers
// that can proceed with permissive defaults should treat a Load error as a
// warning and fall back to DefaultsOnly.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Load global config first (lower precedence)
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	// Load project config (higher precedence, merges over global)
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("routing.specs_path", cfg.Routing.SpecsPath).
		Dur("routing.cache_ttl", cfg.Routing.CacheTTL).
		Int("agents", len(cfg.Agents)).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// LoadFromPaths loads configuration from specific file paths for testing.
//
// projectConfigPath is the path to project-level config (higher priority).
// globalConfigPath is the path to global config (lower priority).
// Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// DefaultsOnly returns a Config built purely from built-in defaults, ignoring
// files and environment. It is the permissive fallback used when configured
// sources cannot be read.
func DefaultsOnly() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Unmarshaling pure defaults cannot fail; the shapes are fixed above.
	_ = v.Unmarshal(&cfg, viperDecoderOption())
	return &cfg
}

// loadGlobalConfig attempts to load the global config file
// (~/.polaris/config.yaml). Returns nil if the file doesn't exist or the
// home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, ok := getGlobalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// getGlobalConfigPathIfExists returns the global config path if it exists.
func getGlobalConfigPathIfExists() (string, bool) {
	globalPath, err := GlobalConfigPath()
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(globalPath); err != nil {
		return "", false
	}
	return globalPath, true
}

// loadProjectConfig attempts to load the project config file
// (.polaris/config.yaml). Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
