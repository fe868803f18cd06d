// Package commands provides the CLI commands for the hmtype tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	verboseFlag bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "hmtype",
	Short: "Hindley-Milner type inference engine with higher-kinded types",
	Long: `hmtype runs a Hindley-Milner + higher-kinded-type inference engine
against a catalogue of built-in example expressions.

This tool never parses surface syntax - expressions are selected by name
from a fixed scenario catalogue and built directly as Go values. Use it to
inspect principal types, see unification/matching failures rendered, or
explore the catalogue interactively.

Usage:
  hmtype list                  List available scenarios
  hmtype infer <scenario>      Print a scenario's principal type
  hmtype repl                  Interactively run scenarios`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".hmtype.yaml", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Print solver re-entry diagnostics")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colorized output")
}
