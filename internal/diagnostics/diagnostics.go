// Package diagnostics renders lex/parse/resolve and runtime errors to the
// exact text §6.5 pins, plus an optional colorized variant for interactive
// use. It is grounded on the teacher's internal/errors package: a small
// struct carrying position and message, with a Format(color bool) method
// rather than baking ANSI codes into Error().
package diagnostics

import "fmt"

// Diagnostic is a single static (lex/parse/resolve) error.
type Diagnostic struct {
	Line    int
	Where   string // "at 'lexeme'" or "at end"
	Message string
}

// Error implements the error interface, producing exactly the text §6.5
// specifies: "[line N] Error at 'lexeme': message".
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[line %d] Error %s: %s", d.Line, d.Where, d.Message)
}

// Format renders a colored variant when color is true (bold red "Error").
func (d Diagnostic) Format(color bool) string {
	if !color {
		return d.Error()
	}
	return fmt.Sprintf("[line %d] \033[1;31mError\033[0m %s: %s", d.Line, d.Where, d.Message)
}

// FormatAll renders a newline-joined list of diagnostics.
func FormatAll(diags []Diagnostic, color bool) string {
	out := ""
	for i, d := range diags {
		if i > 0 {
			out += "\n"
		}
		out += d.Format(color)
	}
	return out
}

// RuntimeError is raised by the evaluator when a runtime precondition fails
// (type mismatch, undefined variable, wrong arity, bad property access). It
// is a distinct type from Diagnostic and is never produced during static
// analysis, matching the separation §7 requires between static errors and
// runtime errors.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// Format renders the exact stderr text §6.5 specifies for runtime errors:
// "message\n[line N]".
func (e *RuntimeError) Format() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

// NewRuntimeError constructs a RuntimeError located at line.
func NewRuntimeError(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
