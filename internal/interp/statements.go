package interp

import (
	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
)

// builtinNames is consulted by FunctionDeclaration to reject shadowing
// (spec §4.4: "rejecting names that shadow built-ins with
// CannotRedeclareInbuiltFunction").
var builtinNames = map[string]bool{"print": true, "append": true, "contains": true}

func (r *Runtime) evalStatement(stmt ast.Stmt, env *Environment) Value {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		return r.evalExpression(s.Expression, env)
	case *ast.BlockStatement:
		return r.evalBlockStatement(s, env)
	case *ast.IfStatement:
		return r.evalIfStatement(s, env)
	case *ast.WhileStatement:
		return r.evalWhileStatement(s, env)
	case *ast.ReturnStatement:
		return r.evalReturnStatement(s, env)
	case *ast.BreakStatement:
		return BreakValue
	case *ast.ContinueStatement:
		return ContinueValue
	case *ast.VariableDeclaration:
		return r.evalVariableDeclaration(s, env)
	case *ast.FunctionDeclaration:
		return r.evalFunctionDeclaration(s, env)
	case *ast.ClassDeclaration:
		return r.evalClassDeclaration(s, env)
	case *ast.ModuleDeclaration:
		return r.evalModuleDeclaration(s, env)
	default:
		return newError(diagnostics.UnexpectedToken, "unsupported statement type %T", s)
	}
}

// evalBlockStatement evaluates a block's statements in a fresh environment
// extending the caller's (spec §9 design note: "A correct implementation
// should extend the environment on entry to a BlockStatement so that
// let/const inside a block do not leak outward" — the divergence from the
// original evaluator noted there is deliberately not carried over).
// It returns the first control-flow value (Return|Break|Continue|Error)
// encountered, else Null (spec §4.4 "Statement semantics").
func (r *Runtime) evalBlockStatement(block *ast.BlockStatement, env *Environment) Value {
	blockEnv := NewEnclosedEnvironment(env)
	defer blockEnv.Release()

	var result Value = NullValue
	for _, stmt := range block.Body {
		result = r.evalStatement(stmt, blockEnv)
		if result != nil && isControlFlow(result) {
			return result
		}
	}
	return result
}

func (r *Runtime) evalIfStatement(s *ast.IfStatement, env *Environment) Value {
	test := r.evalExpression(s.Test, env)
	if isError(test) {
		return test
	}
	cond, ok := isTruthyBoolean(test)
	if !ok {
		return newError(diagnostics.InvalidBoolean, "if condition must be a boolean, got %s", test.Type())
	}
	if cond {
		return r.evalStatement(s.Consequent, env)
	}
	if s.Alternate != nil {
		return r.evalStatement(s.Alternate, env)
	}
	return NullValue
}

// evalWhileStatement re-evaluates the test each iteration; Break stops the
// loop, Return propagates to the caller, Continue returns to the test
// (spec §4.4 "WhileStatement").
func (r *Runtime) evalWhileStatement(s *ast.WhileStatement, env *Environment) Value {
	for {
		test := r.evalExpression(s.Test, env)
		if isError(test) {
			return test
		}
		cond, ok := isTruthyBoolean(test)
		if !ok {
			return newError(diagnostics.InvalidBoolean, "while condition must be a boolean, got %s", test.Type())
		}
		if !cond {
			return NullValue
		}

		result := r.evalStatement(s.Body, env)
		switch result.Type() {
		case BreakType:
			return NullValue
		case ReturnType, ErrorType:
			return result
		case ContinueType:
			continue
		}
	}
}

func (r *Runtime) evalReturnStatement(s *ast.ReturnStatement, env *Environment) Value {
	if s.Argument == nil {
		return &Return{Value: NullValue}
	}
	val := r.evalExpression(s.Argument, env)
	if isError(val) {
		return val
	}
	return &Return{Value: val}
}

// evalVariableDeclaration evaluates each initializer and defines the
// binding; declarations without initializers leave the binding undefined
// (spec §4.4: "not entered into the map").
func (r *Runtime) evalVariableDeclaration(s *ast.VariableDeclaration, env *Environment) Value {
	for _, decl := range s.Declarations {
		if decl.Init == nil {
			continue
		}
		val := r.evalExpression(decl.Init, env)
		if isError(val) {
			return val
		}
		env.Define(decl.Id.Name, val)
	}
	return NullValue
}

func (r *Runtime) evalFunctionDeclaration(s *ast.FunctionDeclaration, env *Environment) Value {
	name := string(s.Id.Name)
	if builtinNames[name] {
		return newError(diagnostics.CannotRedeclareInbuiltFunction, "cannot redeclare built-in function %q", name)
	}
	fn := &Function{Params: s.Params, Body: s.Body, Env: env, Name: name}
	env.Define(s.Id.Name, fn)
	return NullValue
}
