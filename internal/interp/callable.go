package interp

import (
	"github.com/tlox-lang/tlox/internal/ast"
	"github.com/tlox-lang/tlox/internal/diagnostics"
)

// Callable is implemented by every value that can appear as a call
// expression's callee: user functions, native functions, and classes
// (instantiation). Arity and Call together implement §4.5.1's call rule.
type Callable interface {
	Value
	Arity() int
	Call(i *Interpreter, line int, args []Value) (Value, *diagnostics.RuntimeError)
}

// Function is a user-defined function or method value: an AST body plus the
// environment it closed over at declaration time (§3.3, §4.5.3).
type Function struct {
	Name          string
	Params        []string
	Body          []ast.Stmt
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) String() string {
	if f.Name == "" {
		return "<fn>"
	}
	return "<fn " + f.Name + ">"
}

func (f *Function) Arity() int { return len(f.Params) }

// bind implements §4.5.4's method-binding rule: a fresh closure environment
// enclosing the method's own closure, with `this` defined in it.
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

// Call implements §4.5.3's function-invocation steps. A return signal raised
// by the body belongs to this call boundary, so it is consumed here: cleared
// from i.control and turned into the call's result (or, for an initializer,
// discarded in favor of the bound instance per §4.5.5). A break signal still
// active when the body finishes means one escaped its loop, which the
// resolver's static check rules out for well-formed programs — surfaced as a
// genuine bug rather than folded into the error return.
func (f *Function) Call(i *Interpreter, line int, args []Value) (Value, *diagnostics.RuntimeError) {
	env := NewEnclosedEnvironment(f.Closure)
	for idx, param := range f.Params {
		env.Define(param, args[idx])
	}

	if err := i.executeBlock(f.Body, env); err != nil {
		return nil, err
	}

	switch i.control.kind {
	case signalReturn:
		ret := i.control.value
		i.control = controlSignal{}
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret, nil
	case signalBreak:
		panic("interp: break escaped its loop into a function return")
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return NilValue, nil
}

// NativeFunction wraps a Go function as a callable value (§3.3's
// native-function kind; the only instance is `clock`, §10).
type NativeFunction struct {
	FnName   string
	ArgCount int
	Fn       func(args []Value) Value
}

func (n *NativeFunction) String() string { return "<native fn>" }
func (n *NativeFunction) Arity() int     { return n.ArgCount }
func (n *NativeFunction) Call(i *Interpreter, line int, args []Value) (Value, *diagnostics.RuntimeError) {
	return n.Fn(args), nil
}

// Class is an immutable-after-construction class value (§3.3): a name, an
// optional superclass, and a name→method map built by the class-declaration
// evaluation steps in §4.5.2.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) String() string { return c.Name }

// findMethod implements §4.5.4's method-lookup ascent: search this class's
// own method map, then the superclass chain.
func (c *Class) findMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil
}

// Arity is the constructor's arity: init's arity if present, else 0 (§4.5.5).
func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call implements §4.5.5's instantiation rule.
func (c *Class) Call(i *Interpreter, line int, args []Value) (Value, *diagnostics.RuntimeError) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(i, line, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a class instance with a mutable field table (§3.3, §3.4's
// ownership note: instances are reference-shared).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (inst *Instance) String() string { return inst.Class.Name + " instance" }

// get implements §4.5.1's property-get rule: fields shadow methods.
func (inst *Instance) get(line int, name string) (Value, *diagnostics.RuntimeError) {
	if v, ok := inst.Fields[name]; ok {
		return v, nil
	}
	if method := inst.Class.findMethod(name); method != nil {
		return method.bind(inst), nil
	}
	return nil, runtimeErrorf(line, "Undefined property '%s'.", name)
}

func (inst *Instance) set(name string, v Value) {
	inst.Fields[name] = v
}
