package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skink",
	Short: "Skink language front end",
	Long: `Skink is a small dynamically-typed scripting language.

This tool exposes its syntactic front end: it parses Skink source into an
AST and can print it back in canonical form. Running skink without a
subcommand starts the REPL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
