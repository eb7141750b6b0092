// Package ast defines the tlox abstract syntax tree: two sum types,
// Expr and Stmt, built from concrete node structs. Every Expr node embeds a
// NodeID — a monotonically increasing identifier assigned at construction —
// which is the sole key the resolver and evaluator use to address it (§3.2).
// Using an integer id instead of a pointer keeps the resolver's distance map
// portable and free of address-based hashing.
package ast

// NodeID is a unique, stable identity for an Expr node, assigned once at
// parse time and never reused.
type NodeID uint64

// idGen hands out NodeIDs. A package-level counter is sufficient: tlox
// interpreters are single-threaded per §5.
var idGen uint64

func nextID() NodeID {
	idGen++
	return NodeID(idGen)
}

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
	ID() NodeID
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// base is embedded by every Expr implementation to supply a stable NodeID.
type base struct {
	id NodeID
}

func newBase() base { return base{id: nextID()} }

func (b base) ID() NodeID { return b.id }

// Program is the root of a parsed source file: a sequence of declarations.
type Program struct {
	Statements []Stmt
}
