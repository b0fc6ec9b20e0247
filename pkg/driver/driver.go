// Package driver composes the Skink front end: it wires source handling,
// the lexer, and the parser into the entry points that callers (CLI, REPL,
// tests) actually use.
package driver

import (
	"os"

	"skink/pkg/errors"
	"skink/pkg/lexer"
	"skink/pkg/parser"
	"skink/pkg/source"
)

// ParseSource parses a whole source file into a Program. On failure the
// returned error is the *errors.SyntaxError that aborted the parse.
func ParseSource(src *source.SourceFile) (*parser.Program, error) {
	p := parser.NewParser(lexer.NewLexer(src))
	program, perr := p.ParseProgram()
	if perr != nil {
		return nil, perr
	}
	return program, nil
}

// ParseString parses source code from a string (eval-style input).
func ParseString(input string) (*parser.Program, error) {
	return ParseSource(source.NewEvalSource(input))
}

// ParseFile reads and parses a Skink source file.
func ParseFile(path string) (*parser.Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(source.FromFile(path, string(content)))
}

// ParseStatementString parses exactly one statement from a string; trailing
// input is a syntax error.
func ParseStatementString(input string) (parser.Statement, error) {
	p := parser.NewParser(lexer.NewLexerFromString(input))
	stmt, perr := p.ParseStatement()
	if perr != nil {
		return nil, perr
	}
	return stmt, nil
}

// ParseExpressionString parses exactly one expression from a string;
// trailing input is a syntax error.
func ParseExpressionString(input string) (parser.Expression, error) {
	p := parser.NewParser(lexer.NewLexerFromString(input))
	expr, perr := p.ParseExpression()
	if perr != nil {
		return nil, perr
	}
	return expr, nil
}

// SyntaxErrorOf unwraps the Skink error from err if there is one, so callers
// can reach position information without a type assertion on the concrete
// type.
func SyntaxErrorOf(err error) (errors.SkinkError, bool) {
	if se, ok := err.(errors.SkinkError); ok {
		return se, true
	}
	return nil, false
}
