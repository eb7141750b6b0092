package resolver

import (
	"strings"
	"testing"

	"github.com/tlox-lang/tlox/internal/ast"
	"github.com/tlox-lang/tlox/internal/lexer"
	"github.com/tlox-lang/tlox/internal/parser"
)

func resolve(t *testing.T, source string) (*ast.Program, map[ast.NodeID]int, []string) {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l.Tokens())
	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	distances, errs := Resolve(program)
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Error()
	}
	return program, distances, messages
}

func containsMessage(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestResolvesLocalVariableDistance(t *testing.T) {
	program, distances, errs := resolve(t, `
{
  var a = 1;
  {
    var b = a;
  }
}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	outer := program.Statements[0].(*ast.BlockStmt)
	inner := outer.Statements[1].(*ast.BlockStmt)
	read := inner.Statements[0].(*ast.VarStmt).Initializer.(*ast.Variable)
	if d, ok := distances[read.ID()]; !ok || d != 1 {
		t.Fatalf("expected read of 'a' one scope out to resolve to distance 1, got %d (recorded=%v)", d, ok)
	}
}

func TestSelfInitializationIsError(t *testing.T) {
	_, _, errs := resolve(t, `
var a = "outer";
{
  var a = a;
}`)
	if !containsMessage(errs, "Can't read local variable in its own initializer") {
		t.Fatalf("expected self-init error, got %v", errs)
	}
}

func TestRedeclarationInLocalScopeIsError(t *testing.T) {
	_, _, errs := resolve(t, `
{
  var a = 1;
  var a = 2;
}`)
	if !containsMessage(errs, "Already a variable with this name in this scope") {
		t.Fatalf("expected redeclaration error, got %v", errs)
	}
}

func TestRedeclarationAtGlobalScopeIsAllowed(t *testing.T) {
	_, _, errs := resolve(t, `
var a = 1;
var a = 2;
`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors for global redeclaration, got %v", errs)
	}
}

func TestReturnOutsideFunctionIsError(t *testing.T) {
	_, _, errs := resolve(t, `return 1;`)
	if !containsMessage(errs, "Can't return from top-level code") {
		t.Fatalf("expected top-level return error, got %v", errs)
	}
}

func TestReturnValueFromInitializerIsError(t *testing.T) {
	_, _, errs := resolve(t, `
class Foo {
  init() {
    return 1;
  }
}`)
	if !containsMessage(errs, "Can't return a value from an initializer") {
		t.Fatalf("expected initializer return error, got %v", errs)
	}
}

func TestBareReturnFromInitializerIsAllowed(t *testing.T) {
	_, _, errs := resolve(t, `
class Foo {
  init() {
    return;
  }
}`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors for bare return in initializer, got %v", errs)
	}
}

func TestThisOutsideClassIsError(t *testing.T) {
	_, _, errs := resolve(t, `print this;`)
	if !containsMessage(errs, "Can't use 'this' outside of a class") {
		t.Fatalf("expected this-outside-class error, got %v", errs)
	}
}

func TestSuperOutsideClassIsError(t *testing.T) {
	_, _, errs := resolve(t, `print super.foo;`)
	if !containsMessage(errs, "Can't use 'super' outside of a class") {
		t.Fatalf("expected super-outside-class error, got %v", errs)
	}
}

func TestSuperInClassWithoutSuperclassIsError(t *testing.T) {
	_, _, errs := resolve(t, `
class Foo {
  bar() {
    super.bar();
  }
}`)
	if !containsMessage(errs, "Can't use 'super' in a class with no superclass") {
		t.Fatalf("expected super-without-superclass error, got %v", errs)
	}
}

func TestSuperResolvesInSubclass(t *testing.T) {
	_, _, errs := resolve(t, `
class A {
  greet() { print "A"; }
}
class B < A {
  greet() {
    super.greet();
  }
}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestClassInheritingFromItselfIsError(t *testing.T) {
	_, _, errs := resolve(t, `class Foo < Foo {}`)
	if !containsMessage(errs, "A class can't inherit from itself") {
		t.Fatalf("expected self-inheritance error, got %v", errs)
	}
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	_, _, errs := resolve(t, `break;`)
	if !containsMessage(errs, "Can't use 'break' outside of a loop") {
		t.Fatalf("expected break-outside-loop error, got %v", errs)
	}
}

func TestBreakInsideWhileIsAllowed(t *testing.T) {
	_, _, errs := resolve(t, `while (true) { break; }`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestBreakInsideNestedFunctionInsideLoopIsStillError(t *testing.T) {
	// A function body resets loop context: break is illegal even though the
	// function is lexically nested inside a loop, since loopDepth only
	// tracks actual loop nesting, not lexical nesting through functions.
	// resolveFunction saves loopDepth, resets it to zero for the body, and
	// restores it afterwards, the same way it saves and restores
	// currentFunction, so a function declared inside a loop rejects break.
	_, _, errs := resolve(t, `
while (true) {
  fun f() {
    break;
  }
}`)
	if !containsMessage(errs, "Can't use 'break' outside of a loop") {
		t.Fatalf("expected break-outside-loop error inside nested function, got %v", errs)
	}
}

func TestFunctionParametersResolveToFunctionScope(t *testing.T) {
	program, distances, errs := resolve(t, `
fun f(a, b) {
  print a + b;
}`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fn := program.Statements[0].(*ast.FunctionStmt)
	sum := fn.Body[0].(*ast.PrintStmt).Expression.(*ast.Binary)
	for _, operand := range []ast.Expr{sum.Left, sum.Right} {
		if d, ok := distances[operand.ID()]; !ok || d != 0 {
			t.Fatalf("expected parameter read to resolve to the function scope (distance 0), got %d (recorded=%v)", d, ok)
		}
	}
}

func TestGlobalVariableHasNoRecordedDistance(t *testing.T) {
	program, distances, errs := resolve(t, `
var a = 1;
print a;
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	printStmt := program.Statements[1].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)
	if _, ok := distances[variable.ID()]; ok {
		t.Fatalf("expected no distance entry for a global reference")
	}
}
