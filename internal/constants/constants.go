// Package constants provides centralized constant values used throughout Polaris.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// File names used by Polaris for configuration and spec data.
const (
	// ConfigFileName is the name of the YAML file that holds project configuration.
	ConfigFileName = "config.yaml"

	// SpecsFileName is the name of the YAML file that holds the spec and task pool.
	SpecsFileName = "specs.yaml"
)

// Directory names and paths used by Polaris for organizing data.
const (
	// PolarisHome is the hidden directory name where Polaris stores all its data.
	// This directory is created in the user's home directory and, for
	// project-level configuration, in the project root.
	PolarisHome = ".polaris"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Routing configuration defaults.
const (
	// ResultCacheTTL is the default lifetime of a cached recommendation.
	// Identical requests inside this window are served from cache.
	ResultCacheTTL = 5 * time.Minute

	// DefaultMaxWorkloadHours is the default per-agent workload ceiling in hours.
	// The workload validator flags tasks that would push an agent past it.
	DefaultMaxWorkloadHours = 40.0

	// SlowCallTarget is the latency target for a single recommendation call.
	// Calls that exceed it are logged at warn level, never aborted.
	SlowCallTarget = 200 * time.Millisecond

	// MaxAlternatives is the number of runner-up tasks included in a recommendation.
	MaxAlternatives = 3
)

// Workday configuration used when converting effort estimates to calendar time.
const (
	// HoursPerWorkday is the number of working hours assumed per day.
	HoursPerWorkday = 8.0
)
