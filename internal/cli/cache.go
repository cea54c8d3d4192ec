// Package cli provides the command-line interface for Polaris.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/specdriven/polaris/internal/domain"
	"github.com/specdriven/polaris/internal/tui"
)

// cacheController is the engine surface behind the cache commands.
// Used for dependency injection in tests.
type cacheController interface {
	CacheStats() domain.CacheStats
	ClearCache()
}

// newCacheCmd creates the parent cache command.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the recommendation result cache",
		Long: `Commands for the engine's result cache. Identical recommendation
requests inside the TTL window are served from cache; clearing it forces
the next request to recompute.

The cache is process-local and starts empty for each invocation.`,
		// No work of its own - parent command just displays help
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addCacheStatsCmd(cmd)
	addCacheClearCmd(cmd)

	return cmd
}

// AddCacheCommand adds the cache command tree to the root command.
func AddCacheCommand(parent *cobra.Command) {
	parent.AddCommand(newCacheCmd())
}

// addCacheStatsCmd adds the stats subcommand to the cache command.
func addCacheStatsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache entry count and TTL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheStats(cmd.Context(), cmd, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

// runCacheStats executes 'cache stats' with production dependencies.
func runCacheStats(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()

	tui.CheckNoColor()

	deps := newEngineDeps(ctx, cmd)
	return runCacheStatsWithDeps(ctx, w, output, deps.engine)
}

// runCacheStatsWithDeps executes 'cache stats' with injected dependencies.
// This enables testing with mock implementations.
func runCacheStatsWithDeps(ctx context.Context, w io.Writer, output string, eng cacheController) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stats := eng.CacheStats()

	out := newOutput(w, output)
	if isJSON(out) {
		return out.JSON(stats)
	}

	entryWord := "entries"
	if stats.Entries == 1 {
		entryWord = "entry"
	}
	out.Info(fmt.Sprintf("Result cache: %d %s, TTL %s", stats.Entries, entryWord, stats.TTL))
	return nil
}

// addCacheClearCmd adds the clear subcommand to the cache command.
func addCacheClearCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop every cached recommendation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheClear(cmd.Context(), cmd, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

// runCacheClear executes 'cache clear' with production dependencies.
func runCacheClear(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output := cmd.Flag("output").Value.String()

	tui.CheckNoColor()

	deps := newEngineDeps(ctx, cmd)
	return runCacheClearWithDeps(ctx, w, output, deps.engine)
}

// runCacheClearWithDeps executes 'cache clear' with injected dependencies.
// This enables testing with mock implementations.
func runCacheClearWithDeps(ctx context.Context, w io.Writer, output string, eng cacheController) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	eng.ClearCache()

	out := newOutput(w, output)
	out.Success("Result cache cleared.")
	return nil
}
