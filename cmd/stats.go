/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// stats.go implements the "seqcheck stats" command: print the structural
// summary of a sequence file, the same view predicates evaluate.

package cmd

import (
	"fmt"

	"github.com/jpl-au/seqcheck/internal/audit"
	"github.com/jpl-au/seqcheck/internal/param"
	"github.com/jpl-au/seqcheck/internal/seqstats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Print sequence statistics for a file",
	Long: `Decodes a sequence file and prints its structural summary: record and
residue counts, length extremes and GC fraction. The file goes through the
same path rules as any must-exist parameter first, so symbolic links and
directories are rejected before any content is read.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := args[0]

		ev := audit.Event("cli:stats", "stats").Raw(raw)
		st, abs, err := runStats(raw)
		if err == nil {
			ev.Resolved(abs).Detail("sequences", st.Sequences)
		}
		ev.Write(err)

		if err != nil {
			return reportErr(cmd, err)
		}

		if JSON() {
			return PrintJSON(st)
		}
		fmt.Fprintf(Out(), "File:      %s\n", abs)
		fmt.Fprintf(Out(), "Sequences: %d\n", st.Sequences)
		fmt.Fprintf(Out(), "Residues:  %d\n", st.Residues)
		fmt.Fprintf(Out(), "Lengths:   %d-%d\n", st.MinLen, st.MaxLen)
		fmt.Fprintf(Out(), "GC:        %.3f\n", st.GC)
		return nil
	},
}

func runStats(raw string) (seqstats.Stats, string, error) {
	abs, err := param.Resolve(raw, param.MustExist)
	if err != nil {
		return seqstats.Stats{}, "", err
	}

	logger.Debug("decoding sequence file", zap.String("path", abs), zap.String("format", cfg.Format()))
	st, err := seqstats.FromFile(abs, cfg.Format())
	if err != nil {
		return seqstats.Stats{}, "", err
	}
	return st, abs, nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
