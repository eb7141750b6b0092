package interp

import "testing"

func TestDefineShadowsOuterBinding(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", Number(1))
	inner := NewEnclosedEnvironment(outer)
	inner.Define("a", Number(2))

	v, err := inner.Get(1, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Number(2) {
		t.Fatalf("got %v, want 2", v)
	}

	outerVal, err := outer.Get(1, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outerVal != Number(1) {
		t.Fatalf("expected outer binding unaffected, got %v", outerVal)
	}
}

func TestGetWalksOutward(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", String("global"))
	inner := NewEnclosedEnvironment(outer)

	v, err := inner.Get(1, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != String("global") {
		t.Fatalf("got %v, want global", v)
	}
}

func TestGetUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Get(3, "missing"); err == nil {
		t.Fatalf("expected an error")
	} else if err.Error() != "Undefined variable 'missing'." {
		t.Fatalf("got %q", err.Error())
	}
}

func TestAssignWalksOutwardAndMutatesExistingBinding(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", Number(1))
	inner := NewEnclosedEnvironment(outer)

	if err := inner.Assign(1, "a", Number(99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := outer.Get(1, "a")
	if v != Number(99) {
		t.Fatalf("expected outer binding mutated, got %v", v)
	}
}

func TestAssignUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	if err := env.Assign(1, "missing", Number(1)); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestGetAtAndAssignAtUseExactDistance(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", Number(1))
	middle := NewEnclosedEnvironment(global)
	middle.Define("a", Number(2))
	innermost := NewEnclosedEnvironment(middle)

	if v := innermost.GetAt(1, "a"); v != Number(2) {
		t.Fatalf("GetAt(1) got %v, want 2", v)
	}
	if v := innermost.GetAt(2, "a"); v != Number(1) {
		t.Fatalf("GetAt(2) got %v, want 1", v)
	}

	innermost.AssignAt(2, "a", Number(42))
	if v, _ := global.Get(1, "a"); v != Number(42) {
		t.Fatalf("expected AssignAt(2) to mutate the global binding, got %v", v)
	}
}
