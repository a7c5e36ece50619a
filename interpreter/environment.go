package interpreter

import (
	"fmt"

	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/token"
)

// Environment is one link in the chained name-to-value mapping from
// spec.md §3. The chain forms a tree rooted at globals; closures keep
// their capture link alive by holding a reference to it.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]Value)}
}

// Define binds name in this link, overwriting any existing binding
// (last-write-wins, per spec.md §3).
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get walks the chain outward looking for name.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// GetAt indexes exactly `distance` enclosing links out, per the resolver's
// computed distance, then looks up name in that link's local map.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

func (e *Environment) AssignAt(distance int, name token.Token, value Value) {
	e.ancestor(distance).values[name.Lexeme] = value
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// Assign requires the name to already be bound somewhere on the chain;
// assigning to an undefined global is a runtime error (spec.md §4.4).
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return loxerr.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

func (e *Environment) String() string {
	return fmt.Sprintf("Environment(%d names)", len(e.values))
}
