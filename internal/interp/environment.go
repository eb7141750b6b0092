package interp

import "github.com/tlox-lang/tlox/internal/diagnostics"

// Environment is a chain of lexical scopes (§3.4), grounded on the teacher's
// interp/runtime.Environment shape (a store plus an outer pointer) but
// case-sensitive and extended with the by-distance accessors the resolver's
// output requires (§4.4).
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates an environment nested inside outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer}
}

// Define binds name in this environment, shadowing any outer binding of the
// same name. Never fails (§4.4).
func (e *Environment) Define(name string, v Value) {
	e.store[name] = v
}

// Get walks outward from this environment looking for name.
func (e *Environment) Get(line int, name string) (Value, error) {
	if v, ok := e.store[name]; ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(line, name)
	}
	return nil, diagnostics.NewRuntimeError(line, "Undefined variable '%s'.", name)
}

// Assign walks outward from this environment, mutating the first binding of
// name it finds.
func (e *Environment) Assign(line int, name string, v Value) error {
	if _, ok := e.store[name]; ok {
		e.store[name] = v
		return nil
	}
	if e.outer != nil {
		return e.outer.Assign(line, name, v)
	}
	return diagnostics.NewRuntimeError(line, "Undefined variable '%s'.", name)
}

// ancestor walks exactly distance hops outward. A missing binding at that
// depth is a caller bug (the resolver computed the distance), so it panics
// rather than returning an error (§4.4).
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.outer == nil {
			panic("interp: resolver distance exceeds environment chain depth")
		}
		env = env.outer
	}
	return env
}

// GetAt reads name exactly distance hops outward.
func (e *Environment) GetAt(distance int, name string) Value {
	env := e.ancestor(distance)
	v, ok := env.store[name]
	if !ok {
		panic("interp: resolver distance points at a scope missing '" + name + "'")
	}
	return v
}

// AssignAt writes name exactly distance hops outward.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.ancestor(distance).store[name] = v
}
