// Package interp is the tree-walking evaluator: Program -> Value over a
// chain of reference-counted Environments. Grounded on go-dws's
// internal/interp package (Value/Environment/ClassInfo/ObjectInstance
// shapes, RefCountManager), adapted to Wave's dynamically-typed Primitive
// tag set (spec §3) instead of DWScript's statically-typed value model.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sang-it/wave/internal/ast"
)

// ValueType tags a runtime Value (spec §3 "Runtime Value (Primitive)").
type ValueType string

const (
	NumberType   ValueType = "NUMBER"
	BooleanType  ValueType = "BOOLEAN"
	StringType   ValueType = "STRING"
	ArrayType    ValueType = "ARRAY"
	FunctionType ValueType = "FUNCTION"
	ClassType    ValueType = "CLASS"
	InstanceType ValueType = "INSTANCE"
	ThisType     ValueType = "THIS"
	BuiltinType  ValueType = "BUILTIN"
	ReturnType   ValueType = "RETURN"
	BreakType    ValueType = "BREAK"
	ContinueType ValueType = "CONTINUE"
	NullType     ValueType = "NULL"
	ErrorType    ValueType = "ERROR"
)

// Value is satisfied by every runtime Primitive variant.
type Value interface {
	Type() ValueType
	Inspect() string
}

// Number is a double-precision numeric Primitive.
type Number struct{ Value float64 }

func (n *Number) Type() ValueType { return NumberType }
func (n *Number) Inspect() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Boolean is a true/false Primitive.
type Boolean struct{ Value bool }

func (b *Boolean) Type() ValueType  { return BooleanType }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

// String is an owned-text Primitive.
type String struct{ Value string }

func (s *String) Type() ValueType { return StringType }
func (s *String) Inspect() string { return s.Value }

// Array is an ordered sequence of Primitives (spec §3 invariant: "Arrays
// preserve element order").
type Array struct{ Elements []Value }

func (a *Array) Type() ValueType { return ArrayType }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Null is the absence of a value.
type Null struct{}

func (n *Null) Type() ValueType { return NullType }
func (n *Null) Inspect() string { return "null" }

var NullValue = &Null{}

// Function is a closure: parameters, body, and the Environment it was
// declared in (spec §3: "Function(params?, body?, captured_env)").
type Function struct {
	Params     []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
	Name       string       // empty for anonymous function expressions
	BoundThis  *Environment // set when a method is read off an instance (spec §4.4.2)
	BoundClass *Class       // the instance's class, for super/member resolution inside the body
}

func (f *Function) Type() ValueType { return FunctionType }
func (f *Function) Inspect() string {
	if f.Name != "" {
		return fmt.Sprintf("<function %s>", f.Name)
	}
	return "<function>"
}

// Builtin is a host function implemented in Go rather than Wave (spec
// §4.4.4: `print`, `append`, `contains`).
type Builtin struct {
	Name string
	Fn   func(r *Runtime, args []Value) Value
}

func (b *Builtin) Type() ValueType { return BuiltinType }
func (b *Builtin) Inspect() string { return fmt.Sprintf("<builtin %s>", b.Name) }

// Class is `Class(class_env)` (spec §3): the class environment holds every
// `this_`-prefixed method; for a derived class the parent is held in Parent.
// Properties are kept separately since their initializers must be
// re-evaluated fresh for every instance (spec §4.4.2 "NewExpression").
type Class struct {
	Name       string
	Env        *Environment
	Parent     *Class
	Properties []*ast.PropertyDefinition
}

func (c *Class) Type() ValueType  { return ClassType }
func (c *Class) Inspect() string  { return fmt.Sprintf("<class %s>", c.Name) }

// Instance is `Instance(instance_env)`: a fresh frame extending its class's
// environment (spec §4.4.2).
type Instance struct {
	ClassName string
	Class     *Class
	Env       *Environment
}

func (i *Instance) Type() ValueType { return InstanceType }
func (i *Instance) Inspect() string { return fmt.Sprintf("<instance of %s>", i.ClassName) }

// This is `This(env)`: the environment `this`/`this.prop` resolves against
// inside a method body (spec §4.4.2).
type This struct {
	Env   *Environment
	Class *Class
}

func (t *This) Type() ValueType { return ThisType }
func (t *This) Inspect() string { return "this" }

// Return/Break/Continue are control-flow values threaded through statement
// evaluation; they never escape their containing statement (spec §3).
type Return struct{ Value Value }

func (r *Return) Type() ValueType { return ReturnType }
func (r *Return) Inspect() string { return "return " + r.Value.Inspect() }

type Break struct{}

func (b *Break) Type() ValueType { return BreakType }
func (b *Break) Inspect() string { return "break" }

type Continue struct{}

func (c *Continue) Type() ValueType { return ContinueType }
func (c *Continue) Inspect() string { return "continue" }

var (
	BreakValue    = &Break{}
	ContinueValue = &Continue{}
)

// Error is a runtime-fatal value (spec §4.4 "Runtime(program).eval() ->
// Primitive | Error"); it is threaded through evaluation exactly like
// Return/Break/Continue so a single check at each dispatch point aborts the
// walk without panicking (spec §8: "eval ... never panics").
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Type() ValueType { return ErrorType }
func (e *Error) Inspect() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func isError(v Value) bool {
	if v == nil {
		return false
	}
	return v.Type() == ErrorType
}

func isControlFlow(v Value) bool {
	switch v.Type() {
	case ReturnType, BreakType, ContinueType, ErrorType:
		return true
	default:
		return false
	}
}

func isTruthyBoolean(v Value) (bool, bool) {
	b, ok := v.(*Boolean)
	if !ok {
		return false, false
	}
	return b.Value, true
}
