package interp

import (
	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
	"github.com/Sang-it/wave/internal/span"
)

// evalUnaryExpression implements `+`, `-`, `!` (spec §4.4 "Unary operators").
func (r *Runtime) evalUnaryExpression(e *ast.UnaryExpression, env *Environment) Value {
	arg := r.evalExpression(e.Argument, env)
	if isError(arg) {
		return arg
	}
	switch e.Operator {
	case "-":
		n, ok := arg.(*Number)
		if !ok {
			return newError(diagnostics.TypeMismatch, "unary '-' requires a number, got %s", arg.Type())
		}
		return &Number{Value: -n.Value}
	case "+":
		n, ok := arg.(*Number)
		if !ok {
			return newError(diagnostics.TypeMismatch, "unary '+' requires a number, got %s", arg.Type())
		}
		return &Number{Value: n.Value}
	case "!":
		b, ok := arg.(*Boolean)
		if !ok {
			return newError(diagnostics.TypeMismatch, "unary '!' requires a boolean, got %s", arg.Type())
		}
		return &Boolean{Value: !b.Value}
	default:
		return newError(diagnostics.UnexpectedToken, "unsupported unary operator %q", e.Operator)
	}
}

// evalUpdateExpression implements `++`/`--`. Spec §9 notes the original
// implementation's decrement "looks like it was meant to subtract but
// instead adds — likely a bug" and directs a correct reimplementation here:
// both operators apply a true +1/-1 delta, with no special-casing for `--`.
func (r *Runtime) evalUpdateExpression(e *ast.UpdateExpression, env *Environment) Value {
	old := r.evalExpression(e.Argument, env)
	if isError(old) {
		return old
	}
	n, ok := old.(*Number)
	if !ok {
		return newError(diagnostics.TypeMismatch, "%s requires a number, got %s", e.Operator, old.Type())
	}

	delta := 1.0
	if e.Operator == "--" {
		delta = -1.0
	}
	updated := &Number{Value: n.Value + delta}

	if !r.assignTo(e.Argument, updated, env) {
		return newError(diagnostics.VariableNotFound, "invalid update target")
	}
	if e.Prefix {
		return updated
	}
	return n
}

// evalBinaryExpression implements arithmetic, bitwise, comparison, and
// equality operators (spec §4.4 "Binary operators"). Equality and
// inequality compare only values of the same runtime tag (spec §9 open
// question, resolved: comparing across tags is a TypeMismatch rather than
// always-false, matching the spec's stated semantics).
func (r *Runtime) evalBinaryExpression(e *ast.BinaryExpression, env *Environment) Value {
	left := r.evalExpression(e.Left, env)
	if isError(left) {
		return left
	}
	right := r.evalExpression(e.Right, env)
	if isError(right) {
		return right
	}
	return applyBinaryOp(e.Operator, left, right)
}

// applyBinaryOp implements arithmetic, bitwise, comparison, and equality
// operators over already-evaluated operands, so callers that already hold
// both values (compound assignment) don't need to re-evaluate the operand
// expressions to reuse this logic (spec §5: each operand is evaluated
// exactly once).
func applyBinaryOp(op string, left, right Value) Value {
	switch op {
	case "==", "!=":
		return equality(op, left, right)
	case "+":
		if ls, ok := left.(*String); ok {
			rs, ok := right.(*String)
			if !ok {
				return newError(diagnostics.TypeMismatch, "'+' between string and %s is not supported", right.Type())
			}
			return &String{Value: ls.Value + rs.Value}
		}
	case "&&", "||":
		lb, lok := left.(*Boolean)
		rb, rok := right.(*Boolean)
		if !lok || !rok {
			return newError(diagnostics.TypeMismatch, "'%s' requires two booleans, got %s and %s", op, left.Type(), right.Type())
		}
		if op == "&&" {
			return &Boolean{Value: lb.Value && rb.Value}
		}
		return &Boolean{Value: lb.Value || rb.Value}
	}

	ln, lok := left.(*Number)
	rn, rok := right.(*Number)
	if !lok || !rok {
		return newError(diagnostics.TypeMismatch, "'%s' requires two numbers, got %s and %s", op, left.Type(), right.Type())
	}

	switch op {
	case "+":
		return &Number{Value: ln.Value + rn.Value}
	case "-":
		return &Number{Value: ln.Value - rn.Value}
	case "*":
		return &Number{Value: ln.Value * rn.Value}
	case "/":
		return &Number{Value: ln.Value / rn.Value}
	case "%":
		if int64(rn.Value) == 0 {
			return newError(diagnostics.TypeMismatch, "'%%' by zero")
		}
		return &Number{Value: float64(int64(ln.Value) % int64(rn.Value))}
	case "**":
		return &Number{Value: power(ln.Value, rn.Value)}
	case "&":
		return &Number{Value: float64(int64(ln.Value) & int64(rn.Value))}
	case "|":
		return &Number{Value: float64(int64(ln.Value) | int64(rn.Value))}
	case "^":
		return &Number{Value: float64(int64(ln.Value) ^ int64(rn.Value))}
	case "<<":
		return &Number{Value: float64(int64(ln.Value) << uint(int64(rn.Value)))}
	case ">>":
		return &Number{Value: float64(int64(ln.Value) >> uint(int64(rn.Value)))}
	case "<":
		return &Boolean{Value: ln.Value < rn.Value}
	case "<=":
		return &Boolean{Value: ln.Value <= rn.Value}
	case ">":
		return &Boolean{Value: ln.Value > rn.Value}
	case ">=":
		return &Boolean{Value: ln.Value >= rn.Value}
	default:
		return newError(diagnostics.UnexpectedToken, "unsupported binary operator %q", op)
	}
}

func power(base, exp float64) float64 {
	result := 1.0
	n := int64(exp)
	neg := n < 0
	if neg {
		n = -n
	}
	for i := int64(0); i < n; i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

// equality compares two values of the same runtime tag; mismatched tags are
// a TypeMismatch rather than a silent `false` (spec §9).
func equality(op string, left, right Value) Value {
	if left.Type() != right.Type() {
		return newError(diagnostics.TypeMismatch, "cannot compare %s with %s", left.Type(), right.Type())
	}
	var eq bool
	switch l := left.(type) {
	case *Number:
		eq = l.Value == right.(*Number).Value
	case *String:
		eq = l.Value == right.(*String).Value
	case *Boolean:
		eq = l.Value == right.(*Boolean).Value
	case *Null:
		eq = true
	default:
		eq = left == right
	}
	if op == "!=" {
		eq = !eq
	}
	return &Boolean{Value: eq}
}

// evalLogicalExpression implements `&&`/`||`. Spec §9 directs NOT
// implementing short-circuit evaluation: both operands are always
// evaluated, matching the original's (deliberately preserved) behavior.
func (r *Runtime) evalLogicalExpression(e *ast.LogicalExpression, env *Environment) Value {
	left := r.evalExpression(e.Left, env)
	if isError(left) {
		return left
	}
	right := r.evalExpression(e.Right, env)
	if isError(right) {
		return right
	}
	lb, lok := left.(*Boolean)
	rb, rok := right.(*Boolean)
	if !lok || !rok {
		return newError(diagnostics.TypeMismatch, "'%s' requires two booleans, got %s and %s", e.Operator, left.Type(), right.Type())
	}
	switch e.Operator {
	case "&&":
		return &Boolean{Value: lb.Value && rb.Value}
	case "||":
		return &Boolean{Value: lb.Value || rb.Value}
	default:
		return newError(diagnostics.UnexpectedToken, "unsupported logical operator %q", e.Operator)
	}
}

// evalAssignmentExpression implements `=` and the compound-assignment
// operators; Target has already passed cover-grammar validation in the
// parser (spec §4.3), so here it is always an Identifier or MemberExpression.
func (r *Runtime) evalAssignmentExpression(e *ast.AssignmentExpression, env *Environment) Value {
	value := r.evalExpression(e.Value, env)
	if isError(value) {
		return value
	}

	if e.Operator != "=" {
		current := r.evalExpression(e.Target, env)
		if isError(current) {
			return current
		}
		op := e.Operator[:len(e.Operator)-1] // "+=" -> "+"
		value = applyBinaryOp(op, current, value)
		if isError(value) {
			return value
		}
	}

	if !r.assignTo(e.Target, value, env) {
		return newError(diagnostics.VariableNotFound, "invalid assignment target")
	}
	return value
}

// assignTo writes value into target, which must be an Identifier or a
// MemberExpression (spec §4.3 "Cover grammar"). It mutates the binding in
// whichever scope already holds it, per Environment.Assign's semantics.
func (r *Runtime) assignTo(target ast.Expr, value Value, env *Environment) bool {
	switch t := target.(type) {
	case *ast.Identifier:
		return env.Assign(t.Name, value)
	case *ast.MemberExpression:
		return r.assignMember(t, value, env)
	default:
		return false
	}
}

func (r *Runtime) assignMember(m *ast.MemberExpression, value Value, env *Environment) bool {
	obj := r.evalExpression(m.Object, env)
	if isError(obj) {
		return false
	}

	if m.Computed {
		arr, ok := obj.(*Array)
		if !ok {
			return false
		}
		idx := r.evalExpression(m.Property, env)
		n, ok := idx.(*Number)
		if !ok {
			return false
		}
		i := int(n.Value)
		if i < 0 || i >= len(arr.Elements) {
			return false
		}
		arr.Elements[i] = value
		return true
	}

	prop, ok := m.Property.(*ast.Identifier)
	if !ok {
		return false
	}
	memberEnv := memberEnvOf(obj)
	if memberEnv == nil {
		return false
	}
	memberEnv.Define(thisKey(prop.Name), value)
	return true
}

// memberEnvOf returns the environment a `this`/instance member resolves
// against, or nil if obj doesn't carry one.
func memberEnvOf(obj Value) *Environment {
	switch o := obj.(type) {
	case *This:
		return o.Env
	case *Instance:
		return o.Env
	default:
		return nil
	}
}

// thisKey builds the `this_`-prefixed binding key the spec's member-binding
// convention uses for instance fields and class methods (spec §4.4.2/§9).
func thisKey(name span.Atom) span.Atom {
	return span.Atom("this_" + string(name))
}
