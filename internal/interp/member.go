package interp

import (
	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
)

// evalMemberExpression implements `object.property` and `object[property]`
// (spec §4.4 "MemberExpression"). Computed access only applies to Array
// values (spec §4.4.1 "Arrays"); non-computed access resolves against the
// `this_`-prefixed binding convention via lookupMember, walking the class's
// parent chain rather than the lexical scope chain (spec §4.4.2).
func (r *Runtime) evalMemberExpression(e *ast.MemberExpression, env *Environment) Value {
	obj := r.evalExpression(e.Object, env)
	if isError(obj) {
		return obj
	}

	if e.Computed {
		return evalIndexAccess(obj, r.evalExpression(e.Property, env))
	}

	prop, ok := e.Property.(*ast.Identifier)
	if !ok {
		return newError(diagnostics.CannotAccessProperty, "property access requires an identifier")
	}

	memberEnv, class := memberContextOf(obj)
	if memberEnv == nil {
		return newError(diagnostics.CannotAccessProperty, "cannot access property %q on %s", prop.Name, obj.Type())
	}
	if v, ok := lookupMember(memberEnv, class, string(prop.Name)); ok {
		if fn, ok := v.(*Function); ok {
			bound := *fn
			bound.BoundThis = memberEnv
			bound.BoundClass = class
			return &bound
		}
		return v
	}
	return newError(diagnostics.CannotAccessProperty, "%q has no member %q", describeMember(obj), prop.Name)
}

func evalIndexAccess(obj, idx Value) Value {
	if isError(idx) {
		return idx
	}
	arr, ok := obj.(*Array)
	if !ok {
		return newError(diagnostics.NotAnArray, "indexing requires an array, got %s", obj.Type())
	}
	n, ok := idx.(*Number)
	if !ok {
		return newError(diagnostics.InvalidArrayAccess, "array index must be a number, got %s", idx.Type())
	}
	i := int(n.Value)
	if i < 0 || i >= len(arr.Elements) {
		return newError(diagnostics.IndexOutOfBounds, "index %d is out of bounds for array of length %d", i, len(arr.Elements))
	}
	return arr.Elements[i]
}

// memberContextOf returns the environment and owning class a This/Instance
// value's members resolve against.
func memberContextOf(obj Value) (*Environment, *Class) {
	switch o := obj.(type) {
	case *This:
		return o.Env, o.Class
	case *Instance:
		return o.Env, o.Class
	default:
		return nil, nil
	}
}

func describeMember(obj Value) string {
	switch o := obj.(type) {
	case *Instance:
		return o.ClassName
	case *This:
		return "this"
	default:
		return string(obj.Type())
	}
}
