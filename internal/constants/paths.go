package constants

// Log file names and patterns.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.polaris/logs/polaris.log
	CLILogFileName = "polaris.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global Polaris configuration file.
	// This file is located in the Polaris home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the project-specific Polaris configuration file.
	// This file is located under .polaris/ in the project root.
	ProjectConfigName = "config.yaml"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before log rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum number of days to retain rotated logs.
	LogMaxAgeDays = 30

	// LogCompress controls whether rotated log files are gzip compressed.
	LogCompress = true
)
