/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// config.go implements the "seqcheck config" command for reading and
// writing configuration keys.

package cmd

import (
	"fmt"

	"github.com/jpl-au/seqcheck/internal/config"
	"github.com/spf13/cobra"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Reads or writes seqcheck configuration.

  seqcheck config                        # list all keys
  seqcheck config audit.enabled          # get one key
  seqcheck config audit.enabled false    # set a key (global)
  seqcheck config --local stats.format fasta

Writes go to ~/.seqcheck/config.yaml by default; --local writes to
.seqcheck/config.yaml in the current directory.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return reportErr(cmd, err)
		}

		switch len(args) {
		case 0:
			if JSON() {
				values := make(map[string]string, len(config.ValidKeys()))
				for _, key := range config.ValidKeys() {
					v, _ := c.Get(key)
					values[key] = v
				}
				return PrintJSON(values)
			}
			for _, key := range config.ValidKeys() {
				v, _ := c.Get(key)
				fmt.Fprintf(Out(), "%s: %s\n", key, v)
			}
			return nil

		case 1:
			v, err := c.Get(args[0])
			if err != nil {
				return reportErr(cmd, err)
			}
			if JSON() {
				return PrintJSON(map[string]string{args[0]: v})
			}
			fmt.Fprintln(Out(), v)
			return nil

		default:
			if err := c.Set(args[0], args[1]); err != nil {
				return reportErr(cmd, err)
			}
			scope := config.ScopeGlobal
			if configLocal {
				scope = config.ScopeLocal
			}
			if err := c.SaveScope(scope); err != nil {
				return reportErr(cmd, err)
			}
			return nil
		}
	},
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Write to the local .seqcheck/config.yaml")
	rootCmd.AddCommand(configCmd)
}
