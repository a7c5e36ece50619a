package interpreter

import (
	"testing"

	"github.com/loxlang/golox/token"
)

func nameTok(lexeme string) token.Token {
	return token.New(token.Identifier, lexeme, 1)
}

func TestDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", Number(1))
	v, err := env.Get(nameTok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Value(Number(1)) {
		t.Fatalf("expected 1, got %v", v)
	}
}

func TestGetWalksEnclosingChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", Number(1))
	inner := NewEnvironment(outer)
	v, err := inner.Get(nameTok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Value(Number(1)) {
		t.Fatalf("expected 1, got %v", v)
	}
}

func TestGetUndefinedVariableIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	if _, err := env.Get(nameTok("missing")); err == nil {
		t.Fatal("expected a runtime error for an undefined variable")
	}
}

func TestAssignRequiresExistingBinding(t *testing.T) {
	env := NewEnvironment(nil)
	if err := env.Assign(nameTok("missing"), Number(1)); err == nil {
		t.Fatal("expected a runtime error assigning to an undefined variable")
	}
}

func TestAssignWalksEnclosingChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", Number(1))
	inner := NewEnvironment(outer)
	if err := inner.Assign(nameTok("a"), Number(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := outer.Get(nameTok("a"))
	if v != Value(Number(2)) {
		t.Fatalf("expected outer binding updated to 2, got %v", v)
	}
}

func TestGetAtAndAssignAtIndexByDistance(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("a", Number(1))
	mid := NewEnvironment(root)
	leaf := NewEnvironment(mid)

	if got := leaf.GetAt(2, "a"); got != Value(Number(1)) {
		t.Fatalf("expected 1, got %v", got)
	}
	leaf.AssignAt(2, nameTok("a"), Number(9))
	if got := root.values["a"]; got != Value(Number(9)) {
		t.Fatalf("expected root binding updated to 9, got %v", got)
	}
}
