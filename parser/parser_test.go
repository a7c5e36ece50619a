package parser

import (
	"io"
	"testing"

	"github.com/loxlang/golox/ast"
	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/scanner"
)

func parseSource(t *testing.T, source string) ([]ast.Stmt, *loxerr.Reporter) {
	t.Helper()
	reporter := loxerr.New(io.Discard)
	tokens := scanner.New(source, reporter).Scan()
	stmts := New(tokens, reporter).Parse()
	return stmts, reporter
}

func TestParseExpressionStatement(t *testing.T) {
	stmts, reporter := parseSource(t, "1 + 2 * 3;")
	if reporter.HadStaticError {
		t.Fatalf("unexpected static error")
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	expr, ok := stmts[0].(*ast.Expression)
	if !ok {
		t.Fatalf("expected *ast.Expression, got %T", stmts[0])
	}
	if got, want := ast.PrintExpr(expr.Expr), "(+ 1 (* 2 3))"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseVarDeclarationAndAssignment(t *testing.T) {
	stmts, reporter := parseSource(t, "var a = 1; a = 2;")
	if reporter.HadStaticError {
		t.Fatalf("unexpected static error")
	}
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if _, ok := stmts[0].(*ast.Var); !ok {
		t.Fatalf("expected *ast.Var, got %T", stmts[0])
	}
}

func TestParseIfElseAndWhile(t *testing.T) {
	stmts, reporter := parseSource(t, "if (true) print 1; else print 2; while (false) print 3;")
	if reporter.HadStaticError {
		t.Fatalf("unexpected static error")
	}
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if _, ok := stmts[0].(*ast.If); !ok {
		t.Fatalf("expected *ast.If, got %T", stmts[0])
	}
	if _, ok := stmts[1].(*ast.While); !ok {
		t.Fatalf("expected *ast.While, got %T", stmts[1])
	}
}

func TestForStatementDesugarsToWhile(t *testing.T) {
	stmts, reporter := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if reporter.HadStaticError {
		t.Fatalf("unexpected static error")
	}
	block, ok := stmts[0].(*ast.Block)
	if !ok {
		t.Fatalf("expected desugared *ast.Block, got %T", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected init + while, got %d statements", len(block.Statements))
	}
	whileStmt, ok := block.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While as second statement, got %T", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.Block)
	if !ok {
		t.Fatalf("expected while body wrapped in *ast.Block, got %T", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("expected print + increment in body, got %d", len(body.Statements))
	}
}

func TestClassDeclarationWithSuperclassAndMethods(t *testing.T) {
	stmts, reporter := parseSource(t, "class Cake < Pastry { bake() { print \"baking\"; } }")
	if reporter.HadStaticError {
		t.Fatalf("unexpected static error")
	}
	class, ok := stmts[0].(*ast.Class)
	if !ok {
		t.Fatalf("expected *ast.Class, got %T", stmts[0])
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "Pastry" {
		t.Fatalf("expected superclass Pastry, got %v", class.Superclass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "bake" {
		t.Fatalf("expected single method bake, got %v", class.Methods)
	}
}

func TestInvalidAssignmentTargetReportsErrorWithoutPanicking(t *testing.T) {
	_, reporter := parseSource(t, "1 = 2;")
	if !reporter.HadStaticError {
		t.Fatal("expected a static error for an invalid assignment target")
	}
}

func TestSynchronizationRecoversAfterMalformedStatement(t *testing.T) {
	stmts, reporter := parseSource(t, "var = ; print 1;")
	if !reporter.HadStaticError {
		t.Fatal("expected a static error")
	}
	found := false
	for _, s := range stmts {
		if p, ok := s.(*ast.Print); ok {
			if lit, ok := p.Expr.(*ast.Literal); ok && lit.Value == float64(1) {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected parser to recover and still parse the trailing print statement")
	}
}

func TestTooManyArgumentsReportsError(t *testing.T) {
	args := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	_, reporter := parseSource(t, "f("+args+");")
	if !reporter.HadStaticError {
		t.Fatal("expected a static error for more than 255 arguments")
	}
}
