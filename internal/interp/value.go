// Package interp implements the tree-walking evaluator: it executes a
// resolved AST against a chain of lexical environments, per §4.5. It is
// grounded on the teacher's internal/interp package shape — a Value
// interface with per-kind concrete types plus an Interpreter/Environment
// pair driving evaluation — generalized here from DWScript's variant-rich
// value set down to the eight runtime kinds this language needs (§3.3).
package interp

import (
	"fmt"
	"strconv"
)

// Value is implemented by every runtime value kind (§3.3): Number, String,
// Boolean, Nil, *Function, *NativeFunction, *Class, *Instance.
type Value interface {
	// String renders the value the way `print` and the REPL display it
	// (§6.4). It is distinct from Go's fmt.Stringer only in name.
	String() string
}

// Number is a 64-bit floating point runtime value.
type Number float64

func (n Number) String() string {
	if n == Number(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String is a runtime text value. Named String to match the language's own
// vocabulary; Go's std string is referenced as plain `string` throughout
// this package where a Go string (not a language Value) is meant.
type String string

func (s String) String() string { return string(s) }

// Boolean is a runtime true/false value.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the sole nil value. All nils compare equal and there is exactly one
// instance, NilValue, shared by every reference to it.
type Nil struct{}

func (Nil) String() string { return "nil" }

// NilValue is the single shared nil instance.
var NilValue = Nil{}

// isTruthy implements §4.5.1's truthiness rule: everything is truthy except
// nil and the boolean false.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(val)
	default:
		return true
	}
}

// valuesEqual implements the universal equality of §4.5.1: different
// variant kinds are never equal; nil equals only nil; numbers, strings, and
// booleans compare by value; functions, classes, and instances compare by
// reference identity (pointer equality via Go's == on interface values
// holding pointers).
func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	default:
		return a == b
	}
}

// typeName names a value's kind for runtime-error messages.
func typeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Nil:
		return "nil"
	case *Function:
		return "function"
	case *NativeFunction:
		return "native function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return fmt.Sprintf("%T", v)
	}
}
