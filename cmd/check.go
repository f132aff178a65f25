/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// check.go implements the "seqcheck check" command: validate a single path
// parameter value against an existence requirement or, with --predicate, a
// content-gated sequence file check.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jpl-au/seqcheck/internal/audit"
	"github.com/jpl-au/seqcheck/internal/param"
	"github.com/jpl-au/seqcheck/internal/workflow"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkAbsent    bool
	checkPredicate string
	checkArg       int
)

var checkCmd = &cobra.Command{
	Use:   "check PATH",
	Short: "Validate a path parameter value",
	Long: `Validates a raw path value the way a workflow parameter would.

By default the path must name an existing regular file. Use --absent to
require that nothing exists at the path, or --predicate to treat the value
as a sequence file whose decoded content must satisfy a named predicate.

Symbolic links are always rejected, regardless of their target.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := args[0]

		ev := audit.Event("cli:check", "validate").Raw(raw)
		if checkPredicate != "" {
			ev.Detail("predicate", checkPredicate)
		}

		resolved, err := runCheck(raw)
		if err == nil {
			ev.Resolved(resolved)
		}
		ev.Write(err)

		if err != nil {
			return reportErr(cmd, err)
		}

		if JSON() {
			return PrintJSON(map[string]string{"resolved": resolved})
		}
		fmt.Fprintln(Out(), resolved)
		return nil
	},
}

func runCheck(raw string) (string, error) {
	if max := cfg.MaxPath(); max > 0 && len(raw) > max {
		return "", fmt.Errorf("path too long: %d bytes (limit %d)", len(raw), max)
	}

	if checkPredicate != "" {
		if checkAbsent {
			return "", fmt.Errorf("--absent cannot be combined with --predicate: a sequence file must exist")
		}
		reg := workflow.DefaultRegistry()
		build, ok := reg.Get(checkPredicate)
		if !ok {
			names := reg.Names()
			sort.Strings(names)
			return "", fmt.Errorf("unknown predicate %q (available: %s)", checkPredicate, strings.Join(names, ", "))
		}

		logger.Debug("validating sequence file",
			zap.String("raw", raw),
			zap.String("predicate", checkPredicate),
			zap.Int("arg", checkArg))
		return param.NewSequenceFile(build(checkArg)).WithFormat(cfg.Format()).Validate(raw)
	}

	req := param.MustExist
	if checkAbsent {
		req = param.MustNotExist
	}
	logger.Debug("validating path", zap.String("raw", raw), zap.Stringer("requirement", req))
	return param.NewFile(req).Validate(raw)
}

func init() {
	checkCmd.Flags().BoolVar(&checkAbsent, "absent", false, "Require that nothing exists at the path")
	checkCmd.Flags().StringVar(&checkPredicate, "predicate", "", "Validate as a sequence file satisfying the named predicate")
	checkCmd.Flags().IntVar(&checkArg, "arg", 0, "Integer argument for parameterised predicates")
	rootCmd.AddCommand(checkCmd)
}
