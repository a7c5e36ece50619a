package resolver

import (
	"io"
	"testing"

	"github.com/loxlang/golox/ast"
	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/parser"
	"github.com/loxlang/golox/scanner"
)

func resolveSource(t *testing.T, source string) ([]ast.Stmt, Locals, *loxerr.Reporter) {
	t.Helper()
	reporter := loxerr.New(io.Discard)
	tokens := scanner.New(source, reporter).Scan()
	stmts := parser.New(tokens, reporter).Parse()
	locals := New(reporter).Resolve(stmts)
	return stmts, locals, reporter
}

func TestResolvesBlockLocalToDistanceZero(t *testing.T) {
	stmts, locals, reporter := resolveSource(t, "{ var a = 1; print a; }")
	if reporter.HadStaticError {
		t.Fatalf("unexpected static error")
	}
	block := stmts[0].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)
	if dist, ok := locals[variable]; !ok || dist != 0 {
		t.Fatalf("expected distance 0, got %v (found=%v)", dist, ok)
	}
}

func TestGlobalVariableIsNotRecordedInLocals(t *testing.T) {
	stmts, locals, reporter := resolveSource(t, "var a = 1; print a;")
	if reporter.HadStaticError {
		t.Fatalf("unexpected static error")
	}
	printStmt := stmts[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)
	if _, ok := locals[variable]; ok {
		t.Fatal("expected globals to be absent from the side-table")
	}
}

func TestSelfReferenceInInitializerIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, "{ var a = a; }")
	if !reporter.HadStaticError {
		t.Fatal("expected an error for reading a local in its own initializer")
	}
}

func TestReturnOutsideFunctionIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, "return 1;")
	if !reporter.HadStaticError {
		t.Fatal("expected an error for top-level return")
	}
}

func TestReturnValueFromInitializerIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, "class C { init() { return 1; } }")
	if !reporter.HadStaticError {
		t.Fatal("expected an error for returning a value from init()")
	}
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, "print this;")
	if !reporter.HadStaticError {
		t.Fatal("expected an error for 'this' outside a class")
	}
}

func TestClassInheritingFromItselfIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, "class Oops < Oops {}")
	if !reporter.HadStaticError {
		t.Fatal("expected an error for a class inheriting from itself")
	}
}

func TestDuplicateLocalDeclarationIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, "{ var a = 1; var a = 2; }")
	if !reporter.HadStaticError {
		t.Fatal("expected an error for redeclaring a local in the same scope")
	}
}

func TestSuperOutsideSubclassIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, "class C { m() { super.m(); } }")
	if !reporter.HadStaticError {
		t.Fatal("expected an error for 'super' in a class with no superclass")
	}
}
