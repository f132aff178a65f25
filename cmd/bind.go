/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// bind.go implements the "seqcheck bind" command: validate raw values
// against a workflow definition in a single configuration-binding pass.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/seqcheck/internal/audit"
	"github.com/jpl-au/seqcheck/internal/workflow"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bindSet []string

var bindCmd = &cobra.Command{
	Use:   "bind DEFINITION",
	Short: "Validate parameter values against a workflow definition",
	Long: `Parses a YAML workflow definition and validates every declared parameter
against the values supplied with --set. All parameters must validate for
the bind to succeed; the first rejected parameter aborts it.

  seqcheck bind workflow.yaml --set reads=data/reads.fasta --set out=results.tsv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev := audit.Event("cli:bind", "bind").Raw(args[0])

		bindings, name, err := runBind(args[0], bindSet)
		if err == nil {
			ev.Detail("workflow", name).Detail("params", len(bindings))
		}
		ev.Write(err)

		if err != nil {
			return reportErr(cmd, err)
		}

		if JSON() {
			return PrintJSON(bindings)
		}
		for _, b := range bindings {
			fmt.Fprintf(Out(), "%s: %s\n", b.Name, b.Resolved)
		}
		return nil
	},
}

func runBind(defPath string, set []string) ([]workflow.Binding, string, error) {
	data, err := os.ReadFile(defPath)
	if err != nil {
		return nil, "", fmt.Errorf("reading definition: %w", err)
	}

	def, err := workflow.Parse(data)
	if err != nil {
		return nil, "", err
	}

	values := make(map[string]string, len(set))
	for _, s := range set {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, "", fmt.Errorf("invalid --set %q: expected name=value", s)
		}
		values[name] = value
	}

	logger.Debug("binding workflow parameters",
		zap.String("workflow", def.Name),
		zap.Int("declared", len(def.Params)),
		zap.Int("supplied", len(values)))

	bindings, err := workflow.Bind(def, values, workflow.BindOptions{Format: cfg.Format()})
	if err != nil {
		return nil, "", err
	}
	return bindings, def.Name, nil
}

func init() {
	bindCmd.Flags().StringArrayVar(&bindSet, "set", nil, "Parameter value as name=value (repeatable)")
	rootCmd.AddCommand(bindCmd)
}
