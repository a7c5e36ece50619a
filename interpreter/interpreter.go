// Package interpreter implements golox's tree-walking evaluator, per
// spec.md §4.4-§4.7.
package interpreter

import (
	"fmt"
	"io"

	"github.com/loxlang/golox/ast"
	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/resolver"
	"github.com/loxlang/golox/token"
)

// Interpreter walks a resolved statement list and executes it against a
// chain of Environments. Statement execution threads an explicit
// (value, returned, error) result instead of the classic exception-style
// unwind, following sam-decook-lox's `Run(env) (retVal Object, ret bool)`
// convention, extended here with an error return for runtime faults.
type Interpreter struct {
	reporter *loxerr.Reporter
	stdout   io.Writer
	trace    io.Writer
	globals  *Environment
	env      *Environment
	locals   resolver.Locals
}

// SetTrace turns on per-statement execution tracing, writing one
// diagnostic line per top-level statement to w. A nil w disables tracing.
func (interp *Interpreter) SetTrace(w io.Writer) {
	interp.trace = w
}

func New(reporter *loxerr.Reporter, stdout io.Writer, clock func() float64) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", NewNative("clock", 0, func(interp *Interpreter, args []Value) (Value, error) {
		return Number(clock()), nil
	}))
	return &Interpreter{reporter: reporter, stdout: stdout, globals: globals, env: globals}
}

// Interpret executes stmts under the resolution table locals, printing via
// the reporter's Out on any uncaught runtime error (spec.md §6).
func (interp *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) {
	interp.locals = locals
	for _, stmt := range stmts {
		if interp.trace != nil {
			fmt.Fprintf(interp.trace, "[trace] executing %T\n", stmt)
		}
		if _, _, err := interp.execute(stmt); err != nil {
			if rerr, ok := err.(*loxerr.RuntimeError); ok {
				interp.reporter.RuntimeErrorOccurred(rerr)
			} else {
				interp.reporter.RuntimeErrorOccurred(loxerr.NewRuntimeError(token.Token{}, "%s", err.Error()))
			}
			return
		}
	}
}

// execute runs a single statement, returning (value, returned, err).
// returned is true only when a Return statement fired somewhere within.
func (interp *Interpreter) execute(stmt ast.Stmt) (Value, bool, error) {
	switch n := stmt.(type) {
	case *ast.Expression:
		_, err := interp.evaluate(n.Expr)
		return nil, false, err

	case *ast.Print:
		v, err := interp.evaluate(n.Expr)
		if err != nil {
			return nil, false, err
		}
		fmt.Fprintln(interp.stdout, stringify(v))
		return nil, false, nil

	case *ast.Var:
		var v Value = Nil{}
		if n.Initializer != nil {
			var err error
			v, err = interp.evaluate(n.Initializer)
			if err != nil {
				return nil, false, err
			}
		}
		interp.env.Define(n.Name.Lexeme, v)
		return nil, false, nil

	case *ast.Block:
		v, err := interp.executeBlock(n.Statements, NewEnvironment(interp.env))
		return v, v != nil, err

	case *ast.If:
		cond, err := interp.evaluate(n.Condition)
		if err != nil {
			return nil, false, err
		}
		if IsTruthy(cond) {
			return interp.execute(n.Then)
		} else if n.Else != nil {
			return interp.execute(n.Else)
		}
		return nil, false, nil

	case *ast.While:
		for {
			cond, err := interp.evaluate(n.Condition)
			if err != nil {
				return nil, false, err
			}
			if !IsTruthy(cond) {
				return nil, false, nil
			}
			v, ret, err := interp.execute(n.Body)
			if err != nil || ret {
				return v, ret, err
			}
		}

	case *ast.Function:
		fn := NewFunction(n, interp.env, false)
		interp.env.Define(n.Name.Lexeme, fn)
		return nil, false, nil

	case *ast.Return:
		var v Value = Nil{}
		if n.Value != nil {
			var err error
			v, err = interp.evaluate(n.Value)
			if err != nil {
				return nil, false, err
			}
		}
		return v, true, nil

	case *ast.Class:
		return nil, false, interp.executeClass(n)

	default:
		panic("interpreter: unknown statement node")
	}
}

func (interp *Interpreter) executeClass(n *ast.Class) error {
	var superclass *Class
	if n.Superclass != nil {
		v, err := interp.evaluate(n.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return loxerr.NewRuntimeError(n.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	interp.env.Define(n.Name.Lexeme, Nil{})

	classEnv := interp.env
	if superclass != nil {
		classEnv = NewEnvironment(interp.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, classEnv, m.Name.Lexeme == "init")
	}

	class := NewClass(n.Name.Lexeme, superclass, methods)
	return interp.env.Assign(n.Name, class)
}

// executeBlock runs stmts under env, restoring the interpreter's current
// environment on every exit path (normal, returned, or errored).
func (interp *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (Value, error) {
	prev := interp.env
	interp.env = env
	defer func() { interp.env = prev }()

	for _, stmt := range stmts {
		v, ret, err := interp.execute(stmt)
		if err != nil {
			return nil, err
		}
		if ret {
			return v, nil
		}
	}
	return nil, nil
}

func (interp *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil

	case *ast.Grouping:
		return interp.evaluate(n.Inner)

	case *ast.Unary:
		right, err := interp.evaluate(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Op.Type {
		case token.Minus:
			num, ok := right.(Number)
			if !ok {
				return nil, loxerr.NewRuntimeError(n.Op, "Operand must be a number, got %s.", TypeName(right))
			}
			return -num, nil
		case token.Bang:
			return Boolean(!IsTruthy(right)), nil
		}
		panic("interpreter: unknown unary operator")

	case *ast.Binary:
		return interp.evalBinary(n)

	case *ast.Logical:
		left, err := interp.evaluate(n.Left)
		if err != nil {
			return nil, err
		}
		if n.Op.Type == token.Or {
			if IsTruthy(left) {
				return left, nil
			}
		} else {
			if !IsTruthy(left) {
				return left, nil
			}
		}
		return interp.evaluate(n.Right)

	case *ast.Variable:
		return interp.lookupVariable(n.Name, n)

	case *ast.Assign:
		v, err := interp.evaluate(n.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := interp.locals[n]; ok {
			interp.env.AssignAt(dist, n.Name, v)
		} else if err := interp.globals.Assign(n.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Call:
		return interp.evalCall(n)

	case *ast.Get:
		obj, err := interp.evaluate(n.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Name, "Only instances have properties.")
		}
		v, ok := inst.Get(n.Name.Lexeme)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Name, "Undefined property '%s'.", n.Name.Lexeme)
		}
		return v, nil

	case *ast.Set:
		obj, err := interp.evaluate(n.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Name, "Only instances have fields.")
		}
		v, err := interp.evaluate(n.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(n.Name.Lexeme, v)
		return v, nil

	case *ast.This:
		return interp.lookupVariable(n.Keyword, n)

	case *ast.Super:
		dist := interp.locals[n]
		superclass := interp.env.GetAt(dist, "super").(*Class)
		instance := interp.env.GetAt(dist-1, "this").(*Instance)
		method := superclass.FindMethod(n.Method.Lexeme)
		if method == nil {
			return nil, loxerr.NewRuntimeError(n.Method, "Undefined property '%s'.", n.Method.Lexeme)
		}
		return method.bind(instance), nil

	default:
		panic("interpreter: unknown expression node")
	}
}

func (interp *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (Value, error) {
	if dist, ok := interp.locals[expr]; ok {
		return interp.env.GetAt(dist, name.Lexeme), nil
	}
	return interp.globals.Get(name)
}

func (interp *Interpreter) evalCall(n *ast.Call) (Value, error) {
	callee, err := interp.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := interp.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(n.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, loxerr.NewRuntimeError(n.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(interp, args)
}

func (interp *Interpreter) evalBinary(n *ast.Binary) (Value, error) {
	left, err := interp.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Type {
	case token.Minus:
		l, r, ok := numbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Op, "Operands must be numbers.")
		}
		return l - r, nil
	case token.Slash:
		l, r, ok := numbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Op, "Operands must be numbers.")
		}
		return l / r, nil
	case token.Star:
		l, r, ok := numbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Op, "Operands must be numbers.")
		}
		return l * r, nil
	case token.Plus:
		if l, r, ok := numbers(left, right); ok {
			return l + r, nil
		}
		if l, ok := left.(String); ok {
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}
		return nil, loxerr.NewRuntimeError(n.Op, "Operands must be two numbers or two strings.")
	case token.Greater:
		l, r, ok := numbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Op, "Operands must be numbers.")
		}
		return Boolean(l > r), nil
	case token.GreaterEqual:
		l, r, ok := numbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Op, "Operands must be numbers.")
		}
		return Boolean(l >= r), nil
	case token.Less:
		l, r, ok := numbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Op, "Operands must be numbers.")
		}
		return Boolean(l < r), nil
	case token.LessEqual:
		l, r, ok := numbers(left, right)
		if !ok {
			return nil, loxerr.NewRuntimeError(n.Op, "Operands must be numbers.")
		}
		return Boolean(l <= r), nil
	case token.EqualEqual:
		return Boolean(IsEqual(left, right)), nil
	case token.BangEqual:
		return Boolean(!IsEqual(left, right)), nil
	}
	panic("interpreter: unknown binary operator")
}

func numbers(a, b Value) (Number, Number, bool) {
	an, ok := a.(Number)
	if !ok {
		return 0, 0, false
	}
	bn, ok := b.(Number)
	if !ok {
		return 0, 0, false
	}
	return an, bn, true
}

func literalValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Boolean(val)
	case float64:
		return Number(val)
	case string:
		return String(val)
	default:
		panic("interpreter: unrepresentable literal")
	}
}

func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}
