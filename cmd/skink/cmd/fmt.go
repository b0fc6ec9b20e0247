package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skink/pkg/driver"
	"skink/pkg/errors"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Re-print a Skink source file in canonical form",
	Long: `Parses the file and prints it back from the AST, one top-level
statement per line. Re-parsing the output yields a structurally identical
AST.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := driver.ParseFile(args[0])
		if err != nil {
			if se, ok := driver.SyntaxErrorOf(err); ok {
				errors.Display(os.Stderr, se)
			}
			return err
		}

		for _, stmt := range program.Statements {
			fmt.Println(stmt.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
