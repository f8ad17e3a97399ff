package interp

import (
	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
	"github.com/Sang-it/wave/internal/span"
)

// evalClassDeclaration builds a Class value: a fresh environment holding
// every method under its `this_`-prefixed key (spec §4.4.2/§9's
// member-binding convention), and binds the class name in the declaring
// scope (spec §4.4 "ClassDeclaration").
func (r *Runtime) evalClassDeclaration(s *ast.ClassDeclaration, env *Environment) Value {
	classEnv := NewEnclosedEnvironment(env)

	class := &Class{Name: identName(s.Id), Env: classEnv}

	if s.SuperClass != nil {
		superVal := r.evalExpression(s.SuperClass, env)
		if isError(superVal) {
			return superVal
		}
		parent, ok := superVal.(*Class)
		if !ok {
			return newError(diagnostics.CannotInstantiateNonClass, "%q does not extend a class", class.Name)
		}
		class.Parent = parent
	}

	for _, elem := range s.Body {
		switch el := elem.(type) {
		case *ast.MethodDefinition:
			fn := &Function{Params: el.Params, Body: el.Body, Env: classEnv, Name: string(el.Key.Name)}
			classEnv.Define(thisKey(el.Key.Name), fn)
		case *ast.PropertyDefinition:
			class.Properties = append(class.Properties, el)
		}
	}

	env.Define(s.Id.Name, class)
	return NullValue
}

// lookupMember resolves `this.name`/`obj.name` by checking the member
// environment's own bindings, then retrying through the class's parent
// chain via `Parent`, explicitly bypassing the lexical Outer() chain: a
// class's declaring scope is not the same thing as its parent class (spec
// §4.4.2 "Member resolution walks the inheritance chain, not the lexical
// scope chain").
func lookupMember(memberEnv *Environment, class *Class, name string) (Value, bool) {
	key := thisKey(span.Atom(name))
	if v, ok := memberEnv.GetLocal(key); ok {
		return v, true
	}
	for c := class; c != nil; c = c.Parent {
		if v, ok := c.Env.GetLocal(key); ok {
			return v, true
		}
	}
	return nil, false
}
