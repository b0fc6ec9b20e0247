package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skink/pkg/driver"
	"skink/pkg/errors"
	"skink/pkg/parser"
)

var parseShowSource bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Skink source file and dump its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := driver.ParseFile(args[0])
		if err != nil {
			if se, ok := driver.SyntaxErrorOf(err); ok {
				errors.Display(os.Stderr, se)
			}
			return err
		}

		fmt.Print(parser.Dump(program))
		if parseShowSource {
			fmt.Println(program.String())
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseShowSource, "source", false, "Also print the canonical source form")
	rootCmd.AddCommand(parseCmd)
}
