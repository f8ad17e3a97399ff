package interp

import (
	"go.uber.org/zap"

	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
)

// evalCallExpression implements `callee(arguments...)` (spec §4.4
// "CallExpression"). `super(...)` is special-cased: it can only appear as a
// call callee inside a constructor and invokes the parent class's
// constructor against the current instance (spec §4.4.2).
func (r *Runtime) evalCallExpression(e *ast.CallExpression, env *Environment) Value {
	if _, ok := e.Callee.(*ast.SuperExpression); ok {
		return r.evalSuperCall(e, env)
	}

	callee := r.evalExpression(e.Callee, env)
	if isError(callee) {
		return callee
	}

	args, errVal := r.evalArguments(e.Arguments, env)
	if errVal != nil {
		return errVal
	}

	switch fn := callee.(type) {
	case *Builtin:
		return fn.Fn(r, args)
	case *Function:
		return r.callFunction(fn, args)
	default:
		return newError(diagnostics.CannotCallNonFunction, "cannot call a value of type %s", callee.Type())
	}
}

func (r *Runtime) evalArguments(exprs []ast.Expr, env *Environment) ([]Value, Value) {
	args := make([]Value, 0, len(exprs))
	for _, a := range exprs {
		v := r.evalExpression(a, env)
		if isError(v) {
			return nil, v
		}
		args = append(args, v)
	}
	return args, nil
}

// callFunction binds arguments to parameters in a fresh environment
// extending the function's closure, pushes a call frame recording the
// bound instance (if any), evaluates the body, and unwraps a Return value
// (spec §4.4 "CallExpression": "evaluating the body ... unwrapping any
// Return").
func (r *Runtime) callFunction(fn *Function, args []Value) Value {
	if len(args) != len(fn.Params) {
		return newError(diagnostics.InvalidNumberOfArguments, "%s expects %d argument(s), got %d", describeFunction(fn), len(fn.Params), len(args))
	}

	r.Log.Debug("call enter", zap.String("runtime_id", r.ID), zap.String("function", describeFunction(fn)))
	defer r.Log.Debug("call exit", zap.String("runtime_id", r.ID), zap.String("function", describeFunction(fn)))

	callEnv := NewEnclosedEnvironment(fn.Env)
	defer callEnv.Release()
	for i, p := range fn.Params {
		callEnv.Define(p.Name, args[i])
	}

	r.pushFrame(callFrame{class: fn.BoundClass, instanceEnv: fn.BoundThis})
	defer r.popFrame()

	result := r.evalBodyStatements(fn.Body, callEnv)
	if isError(result) {
		return result
	}
	if ret, ok := result.(*Return); ok {
		return ret.Value
	}
	return NullValue
}

// evalBodyStatements runs a function body's statements directly in callEnv
// rather than through evalBlockStatement, so parameters and the body share
// one frame instead of the body opening a second nested scope.
func (r *Runtime) evalBodyStatements(block *ast.BlockStatement, env *Environment) Value {
	var result Value = NullValue
	for _, stmt := range block.Body {
		result = r.evalStatement(stmt, env)
		if result != nil && isControlFlow(result) {
			return result
		}
	}
	return result
}

func describeFunction(fn *Function) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "function"
}

// evalNewExpression implements `new Callee(arguments...)` (spec §4.4.2
// "NewExpression"): allocate an instance environment extending the class
// environment, evaluate every property initializer into it, then invoke
// the constructor (if any) bound to the new instance.
func (r *Runtime) evalNewExpression(e *ast.NewExpression, env *Environment) Value {
	calleeVal := r.evalExpression(e.Callee, env)
	if isError(calleeVal) {
		return calleeVal
	}
	class, ok := calleeVal.(*Class)
	if !ok {
		return newError(diagnostics.CannotInstantiateNonClass, "cannot instantiate a value of type %s", calleeVal.Type())
	}

	instanceEnv := NewEnclosedEnvironment(class.Env)
	instance := &Instance{ClassName: class.Name, Class: class, Env: instanceEnv}

	if errVal := r.initializeProperties(class, instanceEnv, env); errVal != nil {
		return errVal
	}

	args, errVal := r.evalArguments(e.Arguments, env)
	if errVal != nil {
		return errVal
	}

	ctor, ok := lookupMember(instanceEnv, class, "constructor")
	if !ok {
		if len(args) != 0 {
			return newError(diagnostics.InvalidNumberOfArguments, "%s has no constructor but was given %d argument(s)", class.Name, len(args))
		}
		return instance
	}
	fn, ok := ctor.(*Function)
	if !ok {
		return newError(diagnostics.CannotCallNonFunction, "%s's constructor is not callable", class.Name)
	}
	bound := *fn
	bound.BoundThis = instanceEnv
	bound.BoundClass = class
	if result := r.callFunction(&bound, args); isError(result) {
		return result
	}
	return instance
}

// initializeProperties evaluates every property initializer in the class's
// parent-to-child order so a subclass's fields can shadow its parent's
// (spec §4.4.2: "own properties are installed after inherited ones").
func (r *Runtime) initializeProperties(class *Class, instanceEnv *Environment, declEnv *Environment) Value {
	if class.Parent != nil {
		if errVal := r.initializeProperties(class.Parent, instanceEnv, declEnv); errVal != nil {
			return errVal
		}
	}
	for _, prop := range class.Properties {
		var val Value = NullValue
		if prop.Value != nil {
			val = r.evalExpression(prop.Value, class.Env)
			if isError(val) {
				return val
			}
		}
		instanceEnv.Define(thisKey(prop.Key.Name), val)
	}
	return nil
}

// evalSuperCall handles `super(arguments...)`: it only appears inside a
// constructor body and invokes the parent class's constructor against the
// current call frame's instance (spec §4.4.2).
func (r *Runtime) evalSuperCall(e *ast.CallExpression, env *Environment) Value {
	frame := r.currentFrame()
	if frame.class == nil || frame.class.Parent == nil || frame.instanceEnv == nil {
		return newError(diagnostics.CannotCallNonFunction, "'super' call is only valid inside a derived class's constructor")
	}
	parent := frame.class.Parent

	args, errVal := r.evalArguments(e.Arguments, env)
	if errVal != nil {
		return errVal
	}

	ctor, ok := lookupMember(frame.instanceEnv, parent, "constructor")
	if !ok {
		if len(args) != 0 {
			return newError(diagnostics.InvalidNumberOfArguments, "%s has no constructor but was given %d argument(s)", parent.Name, len(args))
		}
		return NullValue
	}
	fn, ok := ctor.(*Function)
	if !ok {
		return newError(diagnostics.CannotCallNonFunction, "%s's constructor is not callable", parent.Name)
	}
	bound := *fn
	bound.BoundThis = frame.instanceEnv
	bound.BoundClass = parent
	return r.callFunction(&bound, args)
}
