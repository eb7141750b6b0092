package ast

import "github.com/tlox-lang/tlox/internal/lexer"

func (*Literal) exprNode()     {}
func (*Grouping) exprNode()    {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Logical) exprNode()     {}
func (*Variable) exprNode()    {}
func (*Assign) exprNode()      {}
func (*Call) exprNode()        {}
func (*Get) exprNode()         {}
func (*Set) exprNode()         {}
func (*This) exprNode()        {}
func (*SuperGet) exprNode()    {}

// Literal is a number, string, boolean, or nil constant.
type Literal struct {
	base
	Value any // float64 | string | bool | nil
}

func NewLiteral(value any) *Literal { return &Literal{base: newBase(), Value: value} }

// Grouping is a parenthesized expression, kept as its own node so printers
// can round-trip source faithfully even though it evaluates transparently.
type Grouping struct {
	base
	Expression Expr
}

func NewGrouping(expr Expr) *Grouping { return &Grouping{base: newBase(), Expression: expr} }

// Unary is a prefix `-` or `!` application.
type Unary struct {
	base
	Operator lexer.Token
	Right    Expr
}

func NewUnary(op lexer.Token, right Expr) *Unary {
	return &Unary{base: newBase(), Operator: op, Right: right}
}

// Binary is an infix arithmetic or comparison expression.
type Binary struct {
	base
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewBinary(left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{base: newBase(), Left: left, Operator: op, Right: right}
}

// Logical is `and`/`or`, which short-circuit and return the operand itself
// rather than a coerced boolean (§4.5.1).
type Logical struct {
	base
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewLogical(left Expr, op lexer.Token, right Expr) *Logical {
	return &Logical{base: newBase(), Left: left, Operator: op, Right: right}
}

// Variable is a read of a named binding. Name carries the token (for line
// info and the identity the resolver records a scope distance against).
type Variable struct {
	base
	Name lexer.Token
}

func NewVariable(name lexer.Token) *Variable { return &Variable{base: newBase(), Name: name} }

// Assign is `name = value`.
type Assign struct {
	base
	Name  lexer.Token
	Value Expr
}

func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{base: newBase(), Name: name, Value: value}
}

// Call is a function/class/native invocation. Paren is the closing `)`
// token, used to report arity and type errors at a sensible line.
type Call struct {
	base
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func NewCall(callee Expr, paren lexer.Token, args []Expr) *Call {
	return &Call{base: newBase(), Callee: callee, Paren: paren, Arguments: args}
}

// Get is a property read, `object.name`.
type Get struct {
	base
	Object Expr
	Name   lexer.Token
}

func NewGet(object Expr, name lexer.Token) *Get { return &Get{base: newBase(), Object: object, Name: name} }

// Set is a property write, `object.name = value`.
type Set struct {
	base
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func NewSet(object Expr, name lexer.Token, value Expr) *Set {
	return &Set{base: newBase(), Object: object, Name: name, Value: value}
}

// This is a `this` reference inside a method.
type This struct {
	base
	Keyword lexer.Token
}

func NewThis(keyword lexer.Token) *This { return &This{base: newBase(), Keyword: keyword} }

// SuperGet is `super.method`.
type SuperGet struct {
	base
	Keyword lexer.Token
	Method  lexer.Token
}

func NewSuperGet(keyword, method lexer.Token) *SuperGet {
	return &SuperGet{base: newBase(), Keyword: keyword, Method: method}
}
