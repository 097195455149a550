package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "accumbench",
	Short: "Benchmark incremental column accumulation",
	Long:  `Generate synthetic tables, append them to an accumulator and time appends and summaries.`,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command. Exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
