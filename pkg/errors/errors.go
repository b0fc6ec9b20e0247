package errors

import (
	"fmt"
	"io"
	"strings"
)

// SkinkError is the interface implemented by all Skink errors. The front end
// only produces syntax errors; the interface leaves room for later phases
// (evaluation, name resolution) to add their own kinds.
type SkinkError interface {
	error // Embed the standard error interface
	Pos() Position
	Kind() string // e.g., "Syntax", "Runtime"
	// Message returns the specific error message without position info.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// SyntaxError represents an error during lexing or parsing. Every grammar
// violation — missing token, disallowed call/index target, unterminated
// bracket, malformed numeric literal — normalizes to this one kind.
type SyntaxError struct {
	Position
	Expected string // description of what the grammar required here
	Found    string // the offending token, or "end of input"
	Cause    error  // underlying cause, if any
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error at %d:%d: %s", e.Line, e.Column, e.Message())
}
func (e *SyntaxError) Pos() Position { return e.Position }
func (e *SyntaxError) Kind() string  { return "Syntax" }
func (e *SyntaxError) Message() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}
func (e *SyntaxError) Unwrap() error { return e.Cause }
func (e *SyntaxError) CausedBy(cause error) *SyntaxError {
	e.Cause = cause
	return e
}

// Display writes a Skink error to w in a user-friendly format, including the
// offending source line and a position marker.
func Display(w io.Writer, err SkinkError) {
	if err == nil {
		return
	}

	pos := err.Pos()
	kind := err.Kind()
	msg := err.Message()

	fmt.Fprintf(w, "%s Error at %d:%d: %s\n", kind, pos.Line, pos.Column, msg)

	if pos.Source == nil {
		return
	}
	lines := pos.Source.Lines()

	// Ensure line numbers are within bounds (1-based index)
	lineIdx := pos.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return
	}

	sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")
	fmt.Fprintf(w, "  %s\n", sourceLine)

	// Marker line: column is 1-based, the caret goes under the offending token.
	col := pos.Column
	if col < 1 {
		col = 1
	}
	marker := strings.Repeat(" ", col-1) + "^"
	fmt.Fprintf(w, "  %s\n", marker)
}
