// Package resolver implements golox's static resolution pass, per
// spec.md §4.3: it computes a scope distance for every Variable, Assign,
// This, and Super occurrence that refers to a non-global binding, and
// diagnoses misuse of `this`, `super`, and `return`.
package resolver

import (
	"github.com/loxlang/golox/ast"
	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Locals is the resolution side-table from spec.md §3: expression identity
// (the Go pointer, since every ast.Expr implementation is a pointer type)
// to non-negative scope distance. Absence means "resolve against globals".
type Locals map[ast.Expr]int

// Resolver walks an already-parsed statement list exactly once. It never
// evaluates expressions and never raises runtime errors; it only reports
// through loxerr.Reporter and populates Locals.
type Resolver struct {
	reporter *loxerr.Reporter
	locals   Locals
	scopes   []map[string]bool

	currentFunction functionType
	currentClass    classType
}

func New(reporter *loxerr.Reporter) *Resolver {
	return &Resolver{reporter: reporter, locals: make(Locals)}
}

// Resolve walks stmts and returns the populated side-table.
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()

	case *ast.Var:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, functionFunction)

	case *ast.Expression:
		r.resolveExpr(n.Expr)

	case *ast.If:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.Print:
		r.resolveExpr(n.Expr)

	case *ast.Return:
		if r.currentFunction == functionNone {
			r.reporter.ErrorAt(n.Keyword, "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == functionInitializer {
				r.reporter.ErrorAt(n.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}

	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)

	case *ast.Class:
		r.resolveClass(n)

	default:
		panic("resolver: unknown statement node")
	}
}

func (r *Resolver) resolveClass(n *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(n.Name)
	r.define(n.Name)

	if n.Superclass != nil {
		if n.Superclass.Name.Lexeme == n.Name.Lexeme {
			r.reporter.ErrorAt(n.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(n.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range n.Methods {
		declType := functionMethod
		if method.Name.Lexeme == "init" {
			declType = functionInitializer
		}
		r.resolveFunction(method, declType)
	}

	r.endScope()

	if n.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; declared && !defined {
				r.reporter.ErrorAt(n.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name)

	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(n.Object)

	case *ast.Grouping:
		r.resolveExpr(n.Inner)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)

	case *ast.Super:
		if r.currentClass == classNone {
			r.reporter.ErrorAt(n.Keyword, "Can't use 'super' outside of a class.")
		} else if r.currentClass != classSubclass {
			r.reporter.ErrorAt(n.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(n, n.Keyword)

	case *ast.This:
		if r.currentClass == classNone {
			r.reporter.ErrorAt(n.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n, n.Keyword)

	case *ast.Unary:
		r.resolveExpr(n.Right)

	default:
		panic("resolver: unknown expression node")
	}
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: resolves against globals, no entry recorded.
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ErrorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}
