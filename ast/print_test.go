package ast

import (
	"testing"

	"github.com/loxlang/golox/token"
)

func TestPrintExprBinaryAndGrouping(t *testing.T) {
	expr := &Binary{
		Left:  &Unary{Op: token.New(token.Minus, "-", 1), Right: &Literal{Value: float64(123)}},
		Op:    token.New(token.Star, "*", 1),
		Right: &Grouping{Inner: &Literal{Value: float64(45.67)}},
	}
	if got, want := PrintExpr(expr), "(* (- 123) (group 45.67))"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintStmtVarAndIf(t *testing.T) {
	name := token.New(token.Identifier, "a", 1)
	v := &Var{Name: name, Initializer: &Literal{Value: float64(1)}}
	if got, want := PrintStmt(v), "(var a 1)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	ifStmt := &If{
		Condition: &Literal{Value: true},
		Then:      &Print{Expr: &Literal{Value: "yes"}},
	}
	if got, want := PrintStmt(ifStmt), "(if true (print yes))"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintStmtClassWithSuperclass(t *testing.T) {
	class := &Class{
		Name:       token.New(token.Identifier, "Cake", 1),
		Superclass: &Variable{Name: token.New(token.Identifier, "Pastry", 1)},
	}
	if got, want := PrintStmt(class), "(class Cake < Pastry)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
