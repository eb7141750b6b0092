// Package resolver implements the static scope-resolution pass described in
// §4.3: a pre-pass over the AST that, for every variable-referencing
// expression, records how many enclosing environments the evaluator must
// walk out to find its binding. It also performs the handful of static
// checks that are cheaper to do once, ahead of time, than on every
// evaluation: self-initialization, return/this/super/break misuse, and local
// redeclaration.
//
// Grounded on the teacher's internal/semantic.Analyzer shape: a struct
// carrying "current function/class kind" flags and a loop-depth counter
// alongside an accumulated diagnostics slice (see analyzer.go), adapted here
// from type-checking to scope resolution.
package resolver

import (
	"github.com/tlox-lang/tlox/internal/ast"
	"github.com/tlox-lang/tlox/internal/diagnostics"
)

// functionKind tracks what kind of function body the resolver is currently
// inside, driving the return-outside-function / return-from-initializer and
// this-outside-class checks.
type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

// classKind tracks whether the resolver is inside a class body and whether
// that class has a superclass, driving the this/super checks.
type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// variableState is the value side of a scope map: a declared-but-not-yet-
// defined name flags a self-initialization read.
type variableState int

const (
	declared variableState = iota
	defined
)

// Resolver computes the Distances map the evaluator needs to resolve every
// local variable reference in O(1) hops instead of a name-based outward
// walk.
type Resolver struct {
	scopes          []map[string]variableState
	distances       map[ast.NodeID]int
	errors          []diagnostics.Diagnostic
	currentFunction functionKind
	currentClass    classKind
	loopDepth       int
}

// New creates a Resolver ready to resolve a single program.
func New() *Resolver {
	return &Resolver{distances: make(map[ast.NodeID]int)}
}

// Resolve walks program, returning the node-id→distance map (§3.5) and any
// static errors found. Absence of a node in the map means "refers to a
// global" (§3.5); it is not itself an error.
func Resolve(program *ast.Program) (map[ast.NodeID]int, []diagnostics.Diagnostic) {
	r := New()
	r.resolveStmts(program.Statements)
	return r.distances, r.errors
}

func (r *Resolver) errorAt(line int, lexeme, message string) {
	where := "at '" + lexeme + "'"
	r.errors = append(r.errors, diagnostics.Diagnostic{Line: line, Where: where, Message: message})
}

// --- scope stack -----------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]variableState))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) currentScope() map[string]variableState {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare inserts name into the innermost scope as "declared", flagging
// redeclaration in a local (non-global) scope — global redeclaration is
// allowed (§4.3).
func (r *Resolver) declare(name string, line int) {
	scope := r.currentScope()
	if scope == nil {
		return
	}
	if _, ok := scope[name]; ok {
		r.errorAt(line, name, "Already a variable with this name in this scope.")
	}
	scope[name] = declared
}

// define marks name as fully initialized in the innermost scope.
func (r *Resolver) define(name string) {
	scope := r.currentScope()
	if scope == nil {
		return
	}
	scope[name] = defined
}

// resolveLocal records the hop-count distance for a variable-referencing
// node if name is found in any local scope; absence means it is global and
// no entry is recorded (§3.5, §4.3).
func (r *Resolver) resolveLocal(id ast.NodeID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.distances[id] = len(r.scopes) - 1 - i
			return
		}
	}
}
