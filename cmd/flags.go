/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Commands read flag values through accessor functions rather than the
// variables themselves, and tests can swap the output writer.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/seqcheck/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validOutputFormats = []string{"json"}

var (
	output  string
	verbose bool
)

// cfg is the loaded configuration, set by Execute before the command runs.
var cfg *config.Config

// logger is the diagnostics logger, set by PersistentPreRunE.
var logger = zap.NewNop()

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// reportErr emits err in the requested output format and returns it, so
// commands keep their non-zero exit status. In JSON mode the error is
// printed as a JSON object and cobra's duplicate printing is suppressed.
func reportErr(cmd *cobra.Command, err error) error {
	cmd.SilenceUsage = true
	if JSON() && err != nil {
		_ = PrintJSON(map[string]string{"error": err.Error()})
		cmd.SilenceErrors = true
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable diagnostic logging on stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
