package interp

import (
	"github.com/tlox-lang/tlox/internal/ast"
	"github.com/tlox-lang/tlox/internal/diagnostics"
	"github.com/tlox-lang/tlox/internal/lexer"
)

// execStmt dispatches over every Stmt node per §4.5.2, returning a runtime
// error through the ordinary result (§7.2) and recording a break/return
// transfer in i.control rather than panicking for it (§9).
func (i *Interpreter) execStmt(stmt ast.Stmt) *diagnostics.RuntimeError {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evalExpr(s.Expression)
		return err
	case *ast.PrintStmt:
		v, err := i.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		i.print(v)
		return nil
	case *ast.VarStmt:
		value := Value(NilValue)
		if s.Initializer != nil {
			v, err := i.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, NewEnclosedEnvironment(i.env))
	case *ast.IfStmt:
		cond, err := i.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execStmt(s.Then)
		} else if s.Else != nil {
			return i.execStmt(s.Else)
		}
		return nil
	case *ast.WhileStmt:
		return i.execWhile(s)
	case *ast.BreakStmt:
		i.control = controlSignal{kind: signalBreak}
		return nil
	case *ast.FunctionStmt:
		fn := &Function{Name: s.Name.Lexeme, Params: paramNamesFromTokens(s.Params), Body: s.Body, Closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.ReturnStmt:
		value := Value(NilValue)
		if s.Value != nil {
			v, err := i.evalExpr(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		i.control = controlSignal{kind: signalReturn, value: value}
		return nil
	case *ast.ClassStmt:
		return i.execClassStmt(s)
	default:
		panic("interp: unhandled statement node")
	}
}

// paramNamesFromTokens extracts parameter names from the parser's token
// slice; the evaluator only ever needs the names, not line/position info.
func paramNamesFromTokens(params []lexer.Token) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return names
}

// executeBlock runs statements with env installed as current, restoring the
// previous current environment on every exit path — normal completion, a
// break/return signal propagating out via i.control, or a runtime error
// returned early — per §4.5.2's block contract and §5's finally-style
// discipline. It stops dispatching further statements as soon as either a
// runtime error or a control signal appears, leaving i.control for the
// nearest enclosing loop or function call to observe.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) *diagnostics.RuntimeError {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.execStmt(stmt); err != nil {
			return err
		}
		if i.control.kind != signalNone {
			return nil
		}
	}
	return nil
}

// execWhile implements §4.5.2's while rule. A break raised by the body
// (directly or through arbitrarily many nested blocks/ifs) is consumed here
// by clearing i.control; a return is left active and propagated to the
// caller, since it belongs to the enclosing function, not this loop.
func (i *Interpreter) execWhile(s *ast.WhileStmt) *diagnostics.RuntimeError {
	for {
		cond, err := i.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := i.execStmt(s.Body); err != nil {
			return err
		}
		if i.control.kind == signalBreak {
			i.control = controlSignal{}
			return nil
		}
		if i.control.kind == signalReturn {
			return nil
		}
	}
}

// execClassStmt implements the six-step class-construction order of §4.5.2,
// load-bearing for both self-reference (step 2) and super lookup at
// distances 2/1 from inside a method (steps 3 and 5, per §9's design note).
func (i *Interpreter) execClassStmt(s *ast.ClassStmt) *diagnostics.RuntimeError {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.evalExpr(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return runtimeErrorf(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, NilValue)

	if superclass != nil {
		i.env = NewEnclosedEnvironment(i.env)
		i.env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &Function{
			Name:          method.Name.Lexeme,
			Params:        paramNamesFromTokens(method.Params),
			Body:          method.Body,
			Closure:       i.env,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	if superclass != nil {
		i.env = i.env.outer
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	if err := i.env.Assign(s.Name.Line, s.Name.Lexeme, class); err != nil {
		return err.(*diagnostics.RuntimeError)
	}
	return nil
}
