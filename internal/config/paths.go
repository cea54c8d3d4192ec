package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/specdriven/polaris/internal/constants"
	"github.com/specdriven/polaris/internal/errors"
)

// GlobalConfigDir returns the path to the global Polaris configuration
// directory. This is typically ~/.polaris on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.PolarisHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration
// directory. This is always .polaris relative to the project root.
func ProjectConfigDir() string {
	return constants.PolarisHome
}

// GlobalConfigPath returns the full path to the global configuration file.
// This is typically ~/.polaris/config.yaml on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file. This is always .polaris/config.yaml relative to the project root.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), constants.ProjectConfigName)
}

// DefaultSpecsPath returns the relative path to the project spec pool file.
// This is always .polaris/specs.yaml relative to the project root.
func DefaultSpecsPath() string {
	return filepath.Join(ProjectConfigDir(), constants.SpecsFileName)
}
