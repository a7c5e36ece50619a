package interpreter

import (
	"fmt"
	"strconv"
)

// Value is the tagged-variant value type from spec.md §3. Every runtime
// value implements this interface, following sam-decook-lox's Object and
// go-dws's Value interfaces (both avoid `any` "to ensure type safety").
type Value interface {
	String() string
}

// Nil is the single Lox nil value.
type Nil struct{}

func (Nil) String() string { return "nil" }

// Boolean wraps a Lox boolean.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number wraps a Lox number as float64 (spec.md §4.5: IEEE-754 double,
// chosen since no example repo in the pack grounds an arbitrary-precision
// decimal dependency and the teacher's own LoxNumber already picks
// float64).
type Number float64

// String uses the shortest round-tripping form, so integer-valued numbers
// print without a fraction (3, not 3.0).
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String wraps a Lox string.
type String string

func (s String) String() string { return string(s) }

// IsTruthy implements the truthiness rule from spec.md §4.4: false and nil
// are falsy, everything else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case Nil, nil:
		return false
	case Boolean:
		return bool(val)
	default:
		return true
	}
}

// IsEqual implements value equality from spec.md §3: nil==nil is true, nil
// is unequal to anything else, otherwise structural equality by kind and
// identity equality for callables/instances (Go's == on interface values
// already gives pointer identity for the pointer-shaped variants below).
func IsEqual(a, b Value) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil || a == nil {
		aNil = true
	}
	if bNil || b == nil {
		bNil = true
	}
	if aNil && bNil {
		return true
	}
	if aNil || bNil {
		return false
	}

	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	default:
		return a == b
	}
}

func TypeName(v Value) string {
	switch v.(type) {
	case Nil, nil:
		return "nil"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	case Callable:
		return "function"
	default:
		return fmt.Sprintf("%T", v)
	}
}
