package ast

import "github.com/Sang-it/wave/internal/span"

// Node is implemented by every AST node; all nodes carry a Span (spec §3).
type Node interface {
	GetSpan() span.Span
}

// Stmt is implemented by every statement-level node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression-level node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of the tree: an ordered list of statements.
type Program struct {
	Body []Stmt
	Span span.Span
}

func (p *Program) GetSpan() span.Span { return p.Span }

// VarKind distinguishes `let` from `const` bindings.
type VarKind int

const (
	Let VarKind = iota
	Const
)

func (k VarKind) String() string {
	if k == Const {
		return "const"
	}
	return "let"
}
