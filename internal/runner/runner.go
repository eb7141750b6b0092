// Package runner wires the lexer, parser, resolver, and evaluator into the
// single pipeline both the CLI and the test suite drive, implementing the
// stage-gating policy of spec.md §7.1: a static error (lex, parse, or
// resolve) halts the run before any evaluation happens, and the three error
// kinds map onto the three non-zero exit codes of spec.md §6.3.
//
// Grounded on the teacher's cmd/dwscript/cmd/run.go driver shape (lex →
// parse → [semantic analyze] → interpret, checking an Errors() accumulator
// after each stage) generalized to this language's extra resolve stage and
// exit-code contract.
package runner

import (
	"fmt"
	"io"

	"github.com/tlox-lang/tlox/internal/ast"
	"github.com/tlox-lang/tlox/internal/diagnostics"
	"github.com/tlox-lang/tlox/internal/interp"
	"github.com/tlox-lang/tlox/internal/lexer"
	"github.com/tlox-lang/tlox/internal/parser"
	"github.com/tlox-lang/tlox/internal/resolver"
)

// Exit codes, bit-exact per spec.md §6.3.
const (
	ExitSuccess      = 0
	ExitUsageError   = 64
	ExitStaticError  = 65
	ExitRuntimeError = 70
)

// Session is one Interpreter reused across successive calls to Run, so that
// variable, function, and class bindings declared by one call are still
// visible to the next — the behavior a REPL user expects from a `> ` prompt.
// A one-shot file execution is just a Session used for a single call.
type Session struct {
	interp *interp.Interpreter
}

// NewSession creates a Session whose print output goes to stdout.
func NewSession(stdout io.Writer) *Session {
	return &Session{interp: interp.New(stdout, make(map[ast.NodeID]int))}
}

// Run lexes, parses, resolves, and interprets source, writing diagnostics to
// stderr and returning the process exit code that should follow. Each stage
// is fully run and its errors fully reported before gating the next: a
// program with three lex errors reports all three, not just the first.
func (s *Session) Run(source string, stderr io.Writer, color bool) int {
	l := lexer.New(source)
	tokens := l.Tokens()
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(stderr, e.Error())
		}
		return ExitStaticError
	}

	p := parser.New(tokens)
	program := p.ParseProgram()
	if diags := p.Errors(); len(diags) > 0 {
		fmt.Fprintln(stderr, diagnostics.FormatAll(diags, color))
		return ExitStaticError
	}

	distances, diags := resolver.Resolve(program)
	if len(diags) > 0 {
		fmt.Fprintln(stderr, diagnostics.FormatAll(diags, color))
		return ExitStaticError
	}
	s.interp.Extend(distances)

	if rtErr := s.interp.Interpret(program); rtErr != nil {
		fmt.Fprintln(stderr, rtErr.Format())
		return ExitRuntimeError
	}
	return ExitSuccess
}

// Run executes a single, standalone source unit (a file's full contents)
// through the pipeline exactly once. It is a convenience wrapper around a
// one-call Session, for callers (file execution, tests) that don't need a
// persistent REPL-style environment across multiple calls.
func Run(source string, stdout, stderr io.Writer, color bool) int {
	return NewSession(stdout).Run(source, stderr, color)
}
