package ast

import (
	"fmt"
	"strings"
)

// PrintProgram renders a statement list as a parenthesized debug form, in the
// spirit of sam-decook-lox's per-node String() methods and go-dws's
// `parse --dump-ast`, collapsed into one place since golox dispatches by
// type switch instead of per-node methods.
func PrintProgram(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(PrintStmt(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func PrintStmt(s Stmt) string {
	switch n := s.(type) {
	case *Expression:
		return PrintExpr(n.Expr)
	case *Print:
		return paren("print", PrintExpr(n.Expr))
	case *Var:
		if n.Initializer == nil {
			return paren("var", n.Name.Lexeme)
		}
		return paren("var", n.Name.Lexeme, PrintExpr(n.Initializer))
	case *Block:
		parts := make([]string, 0, len(n.Statements)+1)
		parts = append(parts, "do")
		for _, stmt := range n.Statements {
			parts = append(parts, PrintStmt(stmt))
		}
		return paren(parts...)
	case *If:
		if n.Else == nil {
			return paren("if", PrintExpr(n.Condition), PrintStmt(n.Then))
		}
		return paren("if", PrintExpr(n.Condition), PrintStmt(n.Then), PrintStmt(n.Else))
	case *While:
		return paren("while", PrintExpr(n.Condition), PrintStmt(n.Body))
	case *Function:
		return paren("fun", n.Name.Lexeme)
	case *Return:
		if n.Value == nil {
			return "(return)"
		}
		return paren("return", PrintExpr(n.Value))
	case *Class:
		if n.Superclass == nil {
			return paren("class", n.Name.Lexeme)
		}
		return paren("class", n.Name.Lexeme, "<", n.Superclass.Name.Lexeme)
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func PrintExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Grouping:
		return paren("group", PrintExpr(n.Inner))
	case *Unary:
		return paren(n.Op.Lexeme, PrintExpr(n.Right))
	case *Binary:
		return paren(n.Op.Lexeme, PrintExpr(n.Left), PrintExpr(n.Right))
	case *Logical:
		return paren(n.Op.Lexeme, PrintExpr(n.Left), PrintExpr(n.Right))
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return paren("=", n.Name.Lexeme, PrintExpr(n.Value))
	case *Call:
		parts := make([]string, 0, len(n.Args)+2)
		parts = append(parts, "call", PrintExpr(n.Callee))
		for _, a := range n.Args {
			parts = append(parts, PrintExpr(a))
		}
		return paren(parts...)
	case *Get:
		return paren(".", PrintExpr(n.Object), n.Name.Lexeme)
	case *Set:
		return paren("=", paren(".", PrintExpr(n.Object), n.Name.Lexeme), PrintExpr(n.Value))
	case *This:
		return "this"
	case *Super:
		return paren("super", n.Method.Lexeme)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func paren(parts ...string) string {
	return "(" + strings.Join(parts, " ") + ")"
}
