package interp

import (
	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
)

func (r *Runtime) evalExpression(expr ast.Expr, env *Environment) Value {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return &Number{Value: e.Value}
	case *ast.StringLiteral:
		return &String{Value: e.Value}
	case *ast.BooleanLiteral:
		return &Boolean{Value: e.Value}
	case *ast.NullLiteral:
		return NullValue
	case *ast.Identifier:
		return r.evalIdentifier(e, env)
	case *ast.ArrayExpression:
		return r.evalArrayExpression(e, env)
	case *ast.UnaryExpression:
		return r.evalUnaryExpression(e, env)
	case *ast.UpdateExpression:
		return r.evalUpdateExpression(e, env)
	case *ast.BinaryExpression:
		return r.evalBinaryExpression(e, env)
	case *ast.LogicalExpression:
		return r.evalLogicalExpression(e, env)
	case *ast.AssignmentExpression:
		return r.evalAssignmentExpression(e, env)
	case *ast.SequenceExpression:
		return r.evalSequenceExpression(e, env)
	case *ast.ParenthesizedExpression:
		return r.evalExpression(e.Expression, env)
	case *ast.ThisExpression:
		return r.evalThisExpression(e, env)
	case *ast.SuperExpression:
		return newError(diagnostics.UnexpectedToken, "'super' may only appear as a call expression's callee")
	case *ast.MemberExpression:
		return r.evalMemberExpression(e, env)
	case *ast.CallExpression:
		return r.evalCallExpression(e, env)
	case *ast.NewExpression:
		return r.evalNewExpression(e, env)
	case *ast.FunctionExpression:
		return &Function{Params: e.Params, Body: e.Body, Env: env, Name: identName(e.Id)}
	default:
		return newError(diagnostics.UnexpectedToken, "unsupported expression type %T", e)
	}
}

func identName(id *ast.Identifier) string {
	if id == nil {
		return ""
	}
	return string(id.Name)
}

func (r *Runtime) evalIdentifier(e *ast.Identifier, env *Environment) Value {
	if v, ok := env.Get(e.Name); ok {
		return v
	}
	return newError(diagnostics.VariableNotFound, "variable %q is not defined", e.Name)
}

func (r *Runtime) evalArrayExpression(e *ast.ArrayExpression, env *Environment) Value {
	elements := make([]Value, 0, len(e.Elements))
	for _, el := range e.Elements {
		v := r.evalExpression(el, env)
		if isError(v) {
			return v
		}
		elements = append(elements, v)
	}
	return &Array{Elements: elements}
}

func (r *Runtime) evalSequenceExpression(e *ast.SequenceExpression, env *Environment) Value {
	var result Value = NullValue
	for _, expr := range e.Expressions {
		result = r.evalExpression(expr, env)
		if isError(result) {
			return result
		}
	}
	return result
}

func (r *Runtime) evalThisExpression(e *ast.ThisExpression, env *Environment) Value {
	frame := r.currentFrame()
	if frame.instanceEnv == nil {
		return newError(diagnostics.CannotAccessProperty, "'this' is not valid outside a method body")
	}
	return &This{Env: frame.instanceEnv, Class: frame.class}
}
