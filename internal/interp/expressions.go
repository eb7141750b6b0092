package interp

import (
	"github.com/tlox-lang/tlox/internal/ast"
	"github.com/tlox-lang/tlox/internal/diagnostics"
	"github.com/tlox-lang/tlox/internal/lexer"
)

// evalExpr dispatches over every Expr node per §4.5.1, returning a runtime
// error through the ordinary result rather than panicking (§7.2).
func (i *Interpreter) evalExpr(expr ast.Expr) (Value, *diagnostics.RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return i.evalLiteral(e), nil
	case *ast.Grouping:
		return i.evalExpr(e.Expression)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Variable:
		return i.lookUpVariable(e.Name, e.ID())
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.This:
		return i.lookUpVariable(e.Keyword, e.ID())
	case *ast.SuperGet:
		return i.evalSuperGet(e)
	default:
		panic("interp: unhandled expression node")
	}
}

func (i *Interpreter) evalLiteral(e *ast.Literal) Value {
	switch v := e.Value.(type) {
	case nil:
		return NilValue
	case float64:
		return Number(v)
	case string:
		return String(v)
	case bool:
		return Boolean(v)
	default:
		panic("interp: literal node holds an unrecognized Go value")
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (Value, *diagnostics.RuntimeError) {
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Lexeme {
	case "-":
		n, ok := right.(Number)
		if !ok {
			return nil, runtimeErrorf(e.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	case "!":
		return Boolean(!isTruthy(right)), nil
	default:
		panic("interp: unrecognized unary operator " + e.Operator.Lexeme)
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, *diagnostics.RuntimeError) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	line := e.Operator.Line

	switch e.Operator.Lexeme {
	case "+":
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErrorf(line, "Operands must be two numbers or two strings.")
	case "-":
		ln, rn, err := numberOperands(line, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case "*":
		ln, rn, err := numberOperands(line, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case "/":
		ln, rn, err := numberOperands(line, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case ">":
		ln, rn, err := numberOperands(line, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln > rn), nil
	case ">=":
		ln, rn, err := numberOperands(line, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln >= rn), nil
	case "<":
		ln, rn, err := numberOperands(line, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln < rn), nil
	case "<=":
		ln, rn, err := numberOperands(line, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln <= rn), nil
	case "==":
		return Boolean(valuesEqual(left, right)), nil
	case "!=":
		return Boolean(!valuesEqual(left, right)), nil
	default:
		panic("interp: unrecognized binary operator " + e.Operator.Lexeme)
	}
}

// numberOperands requires both operands to be numbers, per §4.5.1's
// comparison/arithmetic rule "Operands must be numbers."
func numberOperands(line int, left, right Value) (Number, Number, *diagnostics.RuntimeError) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return 0, 0, runtimeErrorf(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (i *Interpreter) evalLogical(e *ast.Logical) (Value, *diagnostics.RuntimeError) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Lexeme == "or" {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return i.evalExpr(e.Right)
}

func (i *Interpreter) evalAssign(e *ast.Assign) (Value, *diagnostics.RuntimeError) {
	value, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := i.distanceOf(e.ID()); ok {
		i.env.AssignAt(distance, e.Name.Lexeme, value)
	} else if aerr := i.globals.Assign(e.Name.Line, e.Name.Lexeme, value); aerr != nil {
		return nil, aerr.(*diagnostics.RuntimeError)
	}
	return value, nil
}

// lookUpVariable implements §4.5.1's variable-read rule, used for both
// ordinary variable reads and `this`: use the distance map when present,
// otherwise fall through to globals.
func (i *Interpreter) lookUpVariable(name lexer.Token, id ast.NodeID) (Value, *diagnostics.RuntimeError) {
	if distance, ok := i.distanceOf(id); ok {
		return i.env.GetAt(distance, name.Lexeme), nil
	}
	v, err := i.globals.Get(name.Line, name.Lexeme)
	if err != nil {
		return nil, err.(*diagnostics.RuntimeError)
	}
	return v, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, *diagnostics.RuntimeError) {
	callee, err := i.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for idx, argExpr := range e.Arguments {
		v, err := i.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(i, e.Paren.Line, args)
}

func (i *Interpreter) evalGet(e *ast.Get) (Value, *diagnostics.RuntimeError) {
	object, err := i.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have properties.")
	}
	return instance.get(e.Name.Line, e.Name.Lexeme)
}

func (i *Interpreter) evalSet(e *ast.Set) (Value, *diagnostics.RuntimeError) {
	object, err := i.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have fields.")
	}
	value, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	instance.set(e.Name.Lexeme, value)
	return value, nil
}

// evalSuperGet implements §4.5.1's super-method rule: super sits at its
// recorded distance, this always exactly one level inward (set up by the
// class-declaration scope nesting the resolver mirrors, §4.3).
func (i *Interpreter) evalSuperGet(e *ast.SuperGet) (Value, *diagnostics.RuntimeError) {
	distance, ok := i.distanceOf(e.ID())
	if !ok {
		panic("interp: super reference missing a resolved distance")
	}
	superclass := i.env.GetAt(distance, "super").(*Class)
	instance := i.env.GetAt(distance-1, "this").(*Instance)

	method := superclass.findMethod(e.Method.Lexeme)
	if method == nil {
		return nil, runtimeErrorf(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(instance), nil
}
