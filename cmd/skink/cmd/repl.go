package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"skink/pkg/driver"
	"skink/pkg/errors"
	"skink/pkg/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Skink parser REPL",
	Long: `Reads Skink statements from stdin, parses each line, and prints
the canonical form of the resulting AST. Set SKINK_DEBUG to also print the
AST as an indented tree.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

type replStyles struct {
	banner lipgloss.Style
	prompt lipgloss.Style
	errMsg lipgloss.Style
}

func newReplStyles() replStyles {
	if env.Bool("NO_COLOR") {
		plain := lipgloss.NewStyle()
		return replStyles{banner: plain, prompt: plain, errMsg: plain}
	}
	return replStyles{
		banner: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// runRepl starts the read-parse-print loop.
func runRepl() error {
	reader := bufio.NewReader(os.Stdin)
	styles := newReplStyles()
	showDump := env.Bool("SKINK_DEBUG")

	fmt.Println(styles.banner.Render("Skink parser REPL"))
	fmt.Println("Type 'exit' to exit.")

	for {
		fmt.Print(styles.prompt.Render("> "))

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				break
			}
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" {
			break
		}

		program, perr := driver.ParseString(input)
		if perr != nil {
			if se, ok := driver.SyntaxErrorOf(perr); ok {
				var b strings.Builder
				errors.Display(&b, se)
				fmt.Print(styles.errMsg.Render(b.String()))
				fmt.Println()
			} else {
				fmt.Println(styles.errMsg.Render(perr.Error()))
			}
			continue
		}

		for _, stmt := range program.Statements {
			fmt.Println(stmt.String())
		}
		if showDump {
			fmt.Print(parser.Dump(program))
		}
	}

	fmt.Println("Goodbye!")
	return nil
}
