package interp

import (
	"fmt"
	"strings"

	"github.com/Sang-it/wave/internal/diagnostics"
)

// registerBuiltins installs the three host functions spec §4.4.4 names:
// print, append, contains. Each is a Builtin rather than a Function so it
// can run native Go code and format/allocate freely.
func registerBuiltins(env *Environment) {
	env.Define("print", &Builtin{Name: "print", Fn: builtinPrint})
	env.Define("append", &Builtin{Name: "append", Fn: builtinAppend})
	env.Define("contains", &Builtin{Name: "contains", Fn: builtinContains})
}

// builtinPrint writes every argument's display form to the Runtime's output
// stream, space-separated, followed by a newline, and returns Null.
func builtinPrint(r *Runtime, args []Value) Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Inspect()
	}
	fmt.Fprintln(r.Out, strings.Join(parts, " "))
	return NullValue
}

// builtinAppend returns a new array consisting of the first argument's
// elements followed by every remaining argument, in order (spec §4.4.4:
// `append(array, v…)`; does not mutate the original array).
func builtinAppend(r *Runtime, args []Value) Value {
	if len(args) < 2 {
		return newError(diagnostics.InvalidNumberOfArguments, "append expects at least 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError(diagnostics.NotAnArray, "append's first argument must be an array, got %s", args[0].Type())
	}
	values := args[1:]
	extended := make([]Value, len(arr.Elements)+len(values))
	copy(extended, arr.Elements)
	copy(extended[len(arr.Elements):], values)
	return &Array{Elements: extended}
}

// builtinContains reports whether value appears anywhere in array, using
// the same same-tag equality evalBinaryExpression's `==` uses; values of a
// different tag than any element compare unequal rather than erroring.
func builtinContains(r *Runtime, args []Value) Value {
	if len(args) != 2 {
		return newError(diagnostics.InvalidNumberOfArguments, "contains expects 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError(diagnostics.NotAnArray, "contains's first argument must be an array, got %s", args[0].Type())
	}
	needle := args[1]
	for _, el := range arr.Elements {
		if el.Type() != needle.Type() {
			continue
		}
		if eq := equality("==", el, needle); !isError(eq) && eq.(*Boolean).Value {
			return &Boolean{Value: true}
		}
	}
	return &Boolean{Value: false}
}
