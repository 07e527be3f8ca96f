// Package cli defines the dep-sentry command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dep-sentry",
		Short: "Triage dependency-bump pull requests: resync stale branches, approve green ones",
		Long: `dep-sentry walks a list of repositories and triages every open
dependency-bot pull request: stale branches get a resync request, PRs
whose CI is not conclusively green are left for the next run, and green
unapproved PRs get an approving review. Designed to be re-invoked on a
fixed interval; every run recomputes everything from GitHub's current
state.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newTriageCmd())
	rootCmd.AddCommand(newProbeCmd())

	return rootCmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func getEnvOrFlag(flagValue, envKey string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envKey)
}
