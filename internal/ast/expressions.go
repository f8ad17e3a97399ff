package ast

import "github.com/Sang-it/wave/internal/span"

// Identifier is both an expression and a binding-pattern target.
type Identifier struct {
	Name span.Atom
	Span span.Span
}

func (e *Identifier) GetSpan() span.Span { return e.Span }
func (e *Identifier) exprNode()          {}

// NewIdentifier builds an Identifier.
func NewIdentifier(name span.Atom, sp span.Span) *Identifier {
	return &Identifier{Name: name, Span: sp}
}

// NumberLiteral is a decimal numeric literal.
type NumberLiteral struct {
	Value float64
	Span  span.Span
}

func (e *NumberLiteral) GetSpan() span.Span { return e.Span }
func (e *NumberLiteral) exprNode()          {}

// NewNumberLiteral builds a NumberLiteral.
func NewNumberLiteral(value float64, sp span.Span) *NumberLiteral {
	return &NumberLiteral{Value: value, Span: sp}
}

// StringLiteral is a quoted string literal; Value is the unescaped text.
type StringLiteral struct {
	Value string
	Span  span.Span
}

func (e *StringLiteral) GetSpan() span.Span { return e.Span }
func (e *StringLiteral) exprNode()          {}

// NewStringLiteral builds a StringLiteral.
func NewStringLiteral(value string, sp span.Span) *StringLiteral {
	return &StringLiteral{Value: value, Span: sp}
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Value bool
	Span  span.Span
}

func (e *BooleanLiteral) GetSpan() span.Span { return e.Span }
func (e *BooleanLiteral) exprNode()          {}

// NewBooleanLiteral builds a BooleanLiteral.
func NewBooleanLiteral(value bool, sp span.Span) *BooleanLiteral {
	return &BooleanLiteral{Value: value, Span: sp}
}

// NullLiteral is `null`.
type NullLiteral struct {
	Span span.Span
}

func (e *NullLiteral) GetSpan() span.Span { return e.Span }
func (e *NullLiteral) exprNode()          {}

// NewNullLiteral builds a NullLiteral.
func NewNullLiteral(sp span.Span) *NullLiteral {
	return &NullLiteral{Span: sp}
}

// ArrayExpression is `[elem, elem, ...]`; element order is preserved.
type ArrayExpression struct {
	Elements []Expr
	Span     span.Span
}

func (e *ArrayExpression) GetSpan() span.Span { return e.Span }
func (e *ArrayExpression) exprNode()          {}

// NewArrayExpression builds an ArrayExpression.
func NewArrayExpression(elements []Expr, sp span.Span) *ArrayExpression {
	return &ArrayExpression{Elements: elements, Span: sp}
}

// MemberExpression is `object.property` (Computed=false) or
// `object[property]` (Computed=true).
type MemberExpression struct {
	Object   Expr
	Property Expr
	Computed bool
	Span     span.Span
}

func (e *MemberExpression) GetSpan() span.Span { return e.Span }
func (e *MemberExpression) exprNode()          {}

// NewMemberExpression builds a MemberExpression.
func NewMemberExpression(object, property Expr, computed bool, sp span.Span) *MemberExpression {
	return &MemberExpression{Object: object, Property: property, Computed: computed, Span: sp}
}

// CallExpression is `callee(arguments...)`.
type CallExpression struct {
	Callee    Expr
	Arguments []Expr
	Span      span.Span
}

func (e *CallExpression) GetSpan() span.Span { return e.Span }
func (e *CallExpression) exprNode()          {}

// NewCallExpression builds a CallExpression.
func NewCallExpression(callee Expr, args []Expr, sp span.Span) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: args, Span: sp}
}

// NewExpression is `new Callee(arguments...)`.
type NewExpression struct {
	Callee    Expr
	Arguments []Expr
	Span      span.Span
}

func (e *NewExpression) GetSpan() span.Span { return e.Span }
func (e *NewExpression) exprNode()          {}

// NewNewExpression builds a NewExpression.
func NewNewExpression(callee Expr, args []Expr, sp span.Span) *NewExpression {
	return &NewExpression{Callee: callee, Arguments: args, Span: sp}
}

// UnaryExpression is a prefix operator (`+`, `-`, `!`) applied to Argument.
type UnaryExpression struct {
	Operator string
	Argument Expr
	Span     span.Span
}

func (e *UnaryExpression) GetSpan() span.Span { return e.Span }
func (e *UnaryExpression) exprNode()          {}

// NewUnaryExpression builds a UnaryExpression.
func NewUnaryExpression(operator string, argument Expr, sp span.Span) *UnaryExpression {
	return &UnaryExpression{Operator: operator, Argument: argument, Span: sp}
}

// UpdateExpression is `++`/`--`, either prefix or postfix, applied to an
// identifier or member-expression target.
type UpdateExpression struct {
	Operator string
	Argument Expr
	Prefix   bool
	Span     span.Span
}

func (e *UpdateExpression) GetSpan() span.Span { return e.Span }
func (e *UpdateExpression) exprNode()          {}

// NewUpdateExpression builds an UpdateExpression.
func NewUpdateExpression(operator string, argument Expr, prefix bool, sp span.Span) *UpdateExpression {
	return &UpdateExpression{Operator: operator, Argument: argument, Prefix: prefix, Span: sp}
}

// BinaryExpression covers arithmetic, bitwise, comparison, and equality
// operators.
type BinaryExpression struct {
	Operator string
	Left     Expr
	Right    Expr
	Span     span.Span
}

func (e *BinaryExpression) GetSpan() span.Span { return e.Span }
func (e *BinaryExpression) exprNode()          {}

// NewBinaryExpression builds a BinaryExpression.
func NewBinaryExpression(operator string, left, right Expr, sp span.Span) *BinaryExpression {
	return &BinaryExpression{Operator: operator, Left: left, Right: right, Span: sp}
}

// LogicalExpression covers `&&` and `||` (spec: no short-circuit, see §9).
type LogicalExpression struct {
	Operator string
	Left     Expr
	Right    Expr
	Span     span.Span
}

func (e *LogicalExpression) GetSpan() span.Span { return e.Span }
func (e *LogicalExpression) exprNode()          {}

// NewLogicalExpression builds a LogicalExpression.
func NewLogicalExpression(operator string, left, right Expr, sp span.Span) *LogicalExpression {
	return &LogicalExpression{Operator: operator, Left: left, Right: right, Span: sp}
}

// AssignmentExpression is `target op= value`; Target has already been
// through cover-grammar reinterpretation by the time the parser builds this
// node (spec §4.3 "Cover grammar").
type AssignmentExpression struct {
	Operator string
	Target   Expr
	Value    Expr
	Span     span.Span
}

func (e *AssignmentExpression) GetSpan() span.Span { return e.Span }
func (e *AssignmentExpression) exprNode()          {}

// NewAssignmentExpression builds an AssignmentExpression.
func NewAssignmentExpression(operator string, target, value Expr, sp span.Span) *AssignmentExpression {
	return &AssignmentExpression{Operator: operator, Target: target, Value: value, Span: sp}
}

// SequenceExpression is a comma-separated list of expressions; its value is
// the last one.
type SequenceExpression struct {
	Expressions []Expr
	Span        span.Span
}

func (e *SequenceExpression) GetSpan() span.Span { return e.Span }
func (e *SequenceExpression) exprNode()          {}

// NewSequenceExpression builds a SequenceExpression.
func NewSequenceExpression(exprs []Expr, sp span.Span) *SequenceExpression {
	return &SequenceExpression{Expressions: exprs, Span: sp}
}

// ParenthesizedExpression wraps an expression so the cover grammar can still
// see the original parenthesized form when deciding whether it is a valid
// assignment target (spec scenario 6: `(1+2) = 5;` is invalid).
type ParenthesizedExpression struct {
	Expression Expr
	Span       span.Span
}

func (e *ParenthesizedExpression) GetSpan() span.Span { return e.Span }
func (e *ParenthesizedExpression) exprNode()          {}

// NewParenthesizedExpression builds a ParenthesizedExpression.
func NewParenthesizedExpression(expr Expr, sp span.Span) *ParenthesizedExpression {
	return &ParenthesizedExpression{Expression: expr, Span: sp}
}

// ThisExpression is `this`.
type ThisExpression struct {
	Span span.Span
}

func (e *ThisExpression) GetSpan() span.Span { return e.Span }
func (e *ThisExpression) exprNode()          {}

// NewThisExpression builds a ThisExpression.
func NewThisExpression(sp span.Span) *ThisExpression {
	return &ThisExpression{Span: sp}
}

// SuperExpression is `super`, used only as a call callee inside a
// constructor (spec §4.4.2).
type SuperExpression struct {
	Span span.Span
}

func (e *SuperExpression) GetSpan() span.Span { return e.Span }
func (e *SuperExpression) exprNode()          {}

// NewSuperExpression builds a SuperExpression.
func NewSuperExpression(sp span.Span) *SuperExpression {
	return &SuperExpression{Span: sp}
}

// FunctionExpression is an anonymous (or optionally named) function literal.
type FunctionExpression struct {
	Id     *Identifier
	Params []*Identifier
	Body   *BlockStatement
	Span   span.Span
}

func (e *FunctionExpression) GetSpan() span.Span { return e.Span }
func (e *FunctionExpression) exprNode()          {}

// NewFunctionExpression builds a FunctionExpression.
func NewFunctionExpression(id *Identifier, params []*Identifier, body *BlockStatement, sp span.Span) *FunctionExpression {
	return &FunctionExpression{Id: id, Params: params, Body: body, Span: sp}
}
