package interpreter

import (
	"fmt"

	"github.com/loxlang/golox/ast"
)

// Callable is the callable variant of Value from spec.md §4.6: native
// functions, user-defined functions/methods, and classes (construction)
// all implement it.
type Callable interface {
	Value
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// Native wraps a Go function as a zero-overhead Lox builtin, grounded in
// sam-decook-lox's clock() native binding.
type Native struct {
	name string
	fn   func(interp *Interpreter, args []Value) (Value, error)
	n    int
}

func NewNative(name string, arity int, fn func(interp *Interpreter, args []Value) (Value, error)) *Native {
	return &Native{name: name, fn: fn, n: arity}
}

func (n *Native) Arity() int { return n.n }
func (n *Native) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.fn(interp, args)
}
func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.name) }

// Function is a user-defined function or method, closing over the
// environment active at its declaration (spec.md §4.6).
type Function struct {
	decl          *ast.Function
	closure       *Environment
	isInitializer bool
}

func NewFunction(decl *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.decl.Params) }

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme) }

// bind returns a copy of f whose closure has `this` bound to instance, used
// when a method is looked up off an instance (spec.md §4.6).
func (f *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	ret, err := interp.executeBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if ret != nil {
		return ret, nil
	}
	return Nil{}, nil
}

// Class is both a Value (the class object itself, printable and
// assignable) and a Callable (instantiation invokes init, spec.md §4.6/4.7).
type Class struct {
	Name       string
	superclass *Class
	methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, superclass: superclass, methods: methods}
}

func (c *Class) String() string { return c.Name }

// FindMethod looks up name on c, then walks the superclass chain, per the
// single-inheritance method resolution order from spec.md §4.7.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.superclass != nil {
		return c.superclass.FindMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(interp *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object created from a Class, holding its own field
// map distinct from the class's shared method table (spec.md §4.7).
type Instance struct {
	class  *Class
	fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (i *Instance) String() string { return i.class.Name + " instance" }

func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if m := i.class.FindMethod(name); m != nil {
		return m.bind(i), true
	}
	return nil, false
}

func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}
