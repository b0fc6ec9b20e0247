package main

import (
	"fmt"
	"os"

	"skink/cmd/skink/cmd"
	"skink/pkg/driver"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Syntax errors were already rendered with their source context by
		// the subcommand; everything else still needs to be reported.
		if _, ok := driver.SyntaxErrorOf(err); !ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
