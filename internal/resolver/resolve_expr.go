package resolver

import "github.com/tlox-lang/tlox/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no references to resolve
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if scope := r.currentScope(); scope != nil {
			if state, ok := scope[e.Name.Lexeme]; ok && state == declared {
				r.errorAt(e.Name.Line, e.Name.Lexeme, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID(), e.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name.Lexeme)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == classNone {
			r.errorAt(e.Keyword.Line, e.Keyword.Lexeme, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID(), "this")
	case *ast.SuperGet:
		switch r.currentClass {
		case classNone:
			r.errorAt(e.Keyword.Line, e.Keyword.Lexeme, "Can't use 'super' outside of a class.")
		case classClass:
			r.errorAt(e.Keyword.Line, e.Keyword.Lexeme, "Can't use 'super' in a class with no superclass.")
		default:
			r.resolveLocal(e.ID(), "super")
		}
	default:
		panic("resolver: unhandled expression node")
	}
}
