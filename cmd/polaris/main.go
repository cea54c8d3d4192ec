// Package main provides the entry point for the polaris CLI.
package main

import (
	"context"
	"os"

	"github.com/specdriven/polaris/internal/cli"
	"github.com/specdriven/polaris/internal/errors"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info); err != nil {
		if errors.IsExitCode2Error(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
