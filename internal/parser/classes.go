package parser

import (
	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
	"github.com/Sang-it/wave/internal/lexer"
	"github.com/Sang-it/wave/internal/span"
)

// parseClassDeclaration implements spec §4.3 "Class parsing": optional
// binding name, optional `extends <LeftHandSide>`, and a brace-delimited
// body of property/method elements.
func (p *Parser) parseClassDeclaration() ast.Stmt {
	start := p.cur.Span.Start
	p.expect(lexer.Class)

	var id *ast.Identifier
	if p.check(lexer.Identifier) {
		tok := p.cur
		p.advance()
		id = ast.NewIdentifier(p.arena.Intern(tok.Literal), tok.Span)
	}

	var superClass ast.Expr
	if p.match(lexer.Extends) {
		superClass = p.parseCallMemberCallee()
	}

	p.expect(lexer.LBrace)
	var elements []ast.ClassElement
	for !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		if p.match(lexer.Semicolon) {
			continue
		}
		elements = append(elements, p.parseClassElement())
	}
	end := p.cur.Span.End
	p.expect(lexer.RBrace)

	return ast.NewClassDeclaration(id, superClass, elements, span.New(start, end))
}

// parseClassElement parses one member of a class body: a method
// (`name(params) { body }`) or a property (`name = expr`).
func (p *Parser) parseClassElement() ast.ClassElement {
	keyTok := p.expect(lexer.Identifier)
	key := ast.NewIdentifier(p.arena.Intern(keyTok.Literal), keyTok.Span)

	if p.check(lexer.LParen) {
		params := p.parseParameterList()
		body := p.parseFunctionBody()
		return ast.NewMethodDefinition(key, params, body, span.New(keyTok.Span.Start, body.Span.End))
	}

	if key.Name == "constructor" {
		p.addError(diagnostics.FieldConstructor, "a field cannot be named 'constructor'", keyTok.Span)
	}
	p.expect(lexer.Assign)
	value := p.parseAssignmentExpression()
	prop := ast.NewPropertyDefinition(key, value, span.New(keyTok.Span.Start, value.GetSpan().End))
	p.consumeSemicolon(prop.Span)
	return prop
}
