package ast

import "github.com/tlox-lang/tlox/internal/lexer"

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*BreakStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates its expression and writes the result to stdout.
type PrintStmt struct {
	Keyword    lexer.Token
	Expression Expr
}

// VarStmt declares a new binding, `var name = initializer;`. Initializer is
// nil when the declaration has no initializer (binds to nil).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt is `if (Condition) Then [else Else]`. Else is nil when absent.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt is `while (Condition) Body`. The parser lowers `for` into this
// node plus a wrapping BlockStmt (§4.2's for-desugaring), so the evaluator
// never needs a dedicated for-loop case.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// BreakStmt escapes the nearest enclosing loop.
type BreakStmt struct {
	Keyword lexer.Token
}

// FunctionStmt declares a named function (top-level or a class method; the
// resolver/evaluator distinguish methods by the context they're visited in,
// not by a field on this node).
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt raises a non-local return. Value is nil for a bare `return;`.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

// ClassStmt declares a class. Superclass is nil when there is none; when
// present it is always a *Variable (resolved/evaluated like any other
// variable read, then checked to be a class value).
type ClassStmt struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}
