package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/queueworks/qcalc/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "qcalc",
	Short: "qcalc computes analytical queueing model metrics",
	Long: `qcalc evaluates classical queueing models — D/D/1/K-1, M/M/1 and
M/M/C (Erlang-C) — and reports L, Lq, W, Wq, utilization and the
instantaneous count, as numbers or as a schematic diagram.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logging.SetLevel(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR, OFF)")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
