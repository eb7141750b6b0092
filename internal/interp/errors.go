package interp

import "github.com/tlox-lang/tlox/internal/diagnostics"

// runtimeErrorf constructs a *diagnostics.RuntimeError. Every runtime
// precondition failure in this package is returned this way through the
// ordinary error-return path, never raised as a Go panic (§7.2): a panic
// here would make evaluator bugs and legitimate user errors indistinguishable
// to a caller, and would force every Callable implementation, including
// future host-embedding code, to wrap every call in recover.
func runtimeErrorf(line int, format string, args ...any) *diagnostics.RuntimeError {
	return diagnostics.NewRuntimeError(line, format, args...)
}
