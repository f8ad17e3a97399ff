package ast

import "github.com/Sang-it/wave/internal/span"

// ExpressionStatement wraps an expression evaluated for its side effect.
type ExpressionStatement struct {
	Expression Expr
	Span       span.Span
}

func (s *ExpressionStatement) GetSpan() span.Span { return s.Span }
func (s *ExpressionStatement) stmtNode()          {}

// NewExpressionStatement builds an ExpressionStatement.
func NewExpressionStatement(expr Expr, sp span.Span) *ExpressionStatement {
	return &ExpressionStatement{Expression: expr, Span: sp}
}

// BlockStatement is a brace-delimited sequence of statements.
type BlockStatement struct {
	Body []Stmt
	Span span.Span
}

func (s *BlockStatement) GetSpan() span.Span { return s.Span }
func (s *BlockStatement) stmtNode()          {}

// NewBlockStatement builds a BlockStatement.
func NewBlockStatement(body []Stmt, sp span.Span) *BlockStatement {
	return &BlockStatement{Body: body, Span: sp}
}

// IfStatement is `if (test) consequent [else alternate]`. Alternate is nil
// when no else clause was parsed.
type IfStatement struct {
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
	Span       span.Span
}

func (s *IfStatement) GetSpan() span.Span { return s.Span }
func (s *IfStatement) stmtNode()          {}

// NewIfStatement builds an IfStatement.
func NewIfStatement(test Expr, consequent, alternate Stmt, sp span.Span) *IfStatement {
	return &IfStatement{Test: test, Consequent: consequent, Alternate: alternate, Span: sp}
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Test Expr
	Body Stmt
	Span span.Span
}

func (s *WhileStatement) GetSpan() span.Span { return s.Span }
func (s *WhileStatement) stmtNode()          {}

// NewWhileStatement builds a WhileStatement.
func NewWhileStatement(test Expr, body Stmt, sp span.Span) *WhileStatement {
	return &WhileStatement{Test: test, Body: body, Span: sp}
}

// ReturnStatement is `return [argument];`. Argument is nil for a bare return.
type ReturnStatement struct {
	Argument Expr
	Span     span.Span
}

func (s *ReturnStatement) GetSpan() span.Span { return s.Span }
func (s *ReturnStatement) stmtNode()          {}

// NewReturnStatement builds a ReturnStatement.
func NewReturnStatement(argument Expr, sp span.Span) *ReturnStatement {
	return &ReturnStatement{Argument: argument, Span: sp}
}

// BreakStatement is `break;`.
type BreakStatement struct {
	Span span.Span
}

func (s *BreakStatement) GetSpan() span.Span { return s.Span }
func (s *BreakStatement) stmtNode()          {}

// NewBreakStatement builds a BreakStatement.
func NewBreakStatement(sp span.Span) *BreakStatement {
	return &BreakStatement{Span: sp}
}

// ContinueStatement is `continue;`.
type ContinueStatement struct {
	Span span.Span
}

func (s *ContinueStatement) GetSpan() span.Span { return s.Span }
func (s *ContinueStatement) stmtNode()          {}

// NewContinueStatement builds a ContinueStatement.
func NewContinueStatement(sp span.Span) *ContinueStatement {
	return &ContinueStatement{Span: sp}
}

// VariableDeclarator is one binding within a `let`/`const` statement:
// `id [= init]`.
type VariableDeclarator struct {
	Id   *Identifier
	Init Expr
	Span span.Span
}

// VariableDeclaration is `let`/`const` followed by one or more declarators.
type VariableDeclaration struct {
	Kind         VarKind
	Declarations []*VariableDeclarator
	Span         span.Span
}

func (s *VariableDeclaration) GetSpan() span.Span { return s.Span }
func (s *VariableDeclaration) stmtNode()          {}

// NewVariableDeclaration builds a VariableDeclaration.
func NewVariableDeclaration(kind VarKind, decls []*VariableDeclarator, sp span.Span) *VariableDeclaration {
	return &VariableDeclaration{Kind: kind, Declarations: decls, Span: sp}
}

// NewVariableDeclarator builds a VariableDeclarator.
func NewVariableDeclarator(id *Identifier, init Expr, sp span.Span) *VariableDeclarator {
	return &VariableDeclarator{Id: id, Init: init, Span: sp}
}

// FunctionDeclaration binds id to a function value in the enclosing scope.
type FunctionDeclaration struct {
	Id     *Identifier
	Params []*Identifier
	Body   *BlockStatement
	Span   span.Span
}

func (s *FunctionDeclaration) GetSpan() span.Span { return s.Span }
func (s *FunctionDeclaration) stmtNode()          {}

// NewFunctionDeclaration builds a FunctionDeclaration.
func NewFunctionDeclaration(id *Identifier, params []*Identifier, body *BlockStatement, sp span.Span) *FunctionDeclaration {
	return &FunctionDeclaration{Id: id, Params: params, Body: body, Span: sp}
}

// ModuleDeclaration is `import { name, ... } from "path";` (spec §4.4.3).
type ModuleDeclaration struct {
	Specifiers []*Identifier
	Source     string
	Span       span.Span
}

func (s *ModuleDeclaration) GetSpan() span.Span { return s.Span }
func (s *ModuleDeclaration) stmtNode()          {}

// NewModuleDeclaration builds a ModuleDeclaration.
func NewModuleDeclaration(specifiers []*Identifier, source string, sp span.Span) *ModuleDeclaration {
	return &ModuleDeclaration{Specifiers: specifiers, Source: source, Span: sp}
}
