package ast

import "github.com/Sang-it/wave/internal/span"

// ClassElement is implemented by MethodDefinition and PropertyDefinition.
type ClassElement interface {
	Node
	classElementNode()
}

// MethodKind distinguishes the constructor from ordinary methods. A method
// whose key is exactly "constructor" has Kind = MethodConstructor (spec §3
// invariant).
type MethodKind int

const (
	MethodOrdinary MethodKind = iota
	MethodConstructor
)

// MethodDefinition is `name(params) { body }` inside a class body.
type MethodDefinition struct {
	Key    *Identifier
	Kind   MethodKind
	Params []*Identifier
	Body   *BlockStatement
	Span   span.Span
}

func (e *MethodDefinition) GetSpan() span.Span { return e.Span }
func (e *MethodDefinition) classElementNode()  {}

// NewMethodDefinition builds a MethodDefinition, inferring Kind from Key.
func NewMethodDefinition(key *Identifier, params []*Identifier, body *BlockStatement, sp span.Span) *MethodDefinition {
	kind := MethodOrdinary
	if key.Name == "constructor" {
		kind = MethodConstructor
	}
	return &MethodDefinition{Key: key, Kind: kind, Params: params, Body: body, Span: sp}
}

// PropertyDefinition is `name = expr` inside a class body. Value is nil for
// a property with no initializer.
type PropertyDefinition struct {
	Key   *Identifier
	Value Expr
	Span  span.Span
}

func (e *PropertyDefinition) GetSpan() span.Span { return e.Span }
func (e *PropertyDefinition) classElementNode()  {}

// NewPropertyDefinition builds a PropertyDefinition.
func NewPropertyDefinition(key *Identifier, value Expr, sp span.Span) *PropertyDefinition {
	return &PropertyDefinition{Key: key, Value: value, Span: sp}
}

// ClassDeclaration is `class [Id] [extends SuperClass] { body }`.
type ClassDeclaration struct {
	Id         *Identifier
	SuperClass Expr
	Body       []ClassElement
	Span       span.Span
}

func (s *ClassDeclaration) GetSpan() span.Span { return s.Span }
func (s *ClassDeclaration) stmtNode()          {}

// NewClassDeclaration builds a ClassDeclaration.
func NewClassDeclaration(id *Identifier, superClass Expr, body []ClassElement, sp span.Span) *ClassDeclaration {
	return &ClassDeclaration{Id: id, SuperClass: superClass, Body: body, Span: sp}
}
