/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from flags.go to isolate cobra setup from flag definitions.
// Execute owns process lifecycle: it loads configuration, opens the audit
// logger when enabled, runs the command, and closes the logger before exit.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/seqcheck/internal/audit"
	"github.com/jpl-au/seqcheck/internal/config"
	"github.com/jpl-au/seqcheck/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seqcheck",
	Short: "Validated file-path parameters for sequence workflow pipelines",
	Long:  `Validates file-path parameter values for workflow definitions: resolves raw paths to canonical absolute form, enforces existence and no-symlink rules, and optionally gates sequence files on decoded content.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if cfg == nil {
			cfg = loadConfig()
		}
		logger = logging.New(verbose)
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging (unless disabled in config), executes the command,
// and closes the logger before exit. Exit code 1 indicates error.
func Execute() {
	cfg = loadConfig()

	if cfg.AuditEnabled() {
		// Best-effort: warn if the audit log is unavailable, but continue
		if err := audit.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		if wd, err := os.Getwd(); err == nil {
			audit.SetProject(wd)
		}
	}
	defer audit.Close()

	if err := rootCmd.Execute(); err != nil {
		audit.Close()
		os.Exit(1)
	}
}

// loadConfig loads configuration, falling back to defaults when the config
// file is broken rather than refusing to run.
func loadConfig() *config.Config {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return &config.Config{}
	}
	return c
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
