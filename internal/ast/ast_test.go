package ast

import (
	"testing"

	"github.com/tlox-lang/tlox/internal/lexer"
)

func TestNodeIdentityIsUniquePerNode(t *testing.T) {
	a := NewLiteral(1.0)
	b := NewLiteral(1.0)
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct node ids for distinct nodes, got %d == %d", a.ID(), b.ID())
	}
}

func TestNodeIdentityIsStable(t *testing.T) {
	a := NewLiteral(1.0)
	id1 := a.ID()
	id2 := a.ID()
	if id1 != id2 {
		t.Fatalf("expected stable node id, got %d then %d", id1, id2)
	}
}

func TestExprInterfaceSatisfiedByAllNodes(t *testing.T) {
	var tok lexer.Token
	var exprs = []Expr{
		NewLiteral(nil),
		NewGrouping(NewLiteral(nil)),
		NewUnary(tok, NewLiteral(nil)),
		NewBinary(NewLiteral(nil), tok, NewLiteral(nil)),
		NewLogical(NewLiteral(nil), tok, NewLiteral(nil)),
		NewVariable(tok),
		NewAssign(tok, NewLiteral(nil)),
		NewCall(NewLiteral(nil), tok, nil),
		NewGet(NewLiteral(nil), tok),
		NewSet(NewLiteral(nil), tok, NewLiteral(nil)),
		NewThis(tok),
		NewSuperGet(tok, tok),
	}
	for _, e := range exprs {
		if e.ID() == 0 {
			t.Fatalf("expected non-zero node id")
		}
	}
}
