package parser

import (
	"strconv"

	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
	"github.com/Sang-it/wave/internal/lexer"
	"github.com/Sang-it/wave/internal/span"
)

func (p *Parser) parseExpression() ast.Expr {
	expr := p.parseAssignmentExpression()
	if p.check(lexer.Comma) {
		exprs := []ast.Expr{expr}
		start := expr.GetSpan().Start
		for p.match(lexer.Comma) {
			exprs = append(exprs, p.parseAssignmentExpression())
		}
		end := exprs[len(exprs)-1].GetSpan().End
		return ast.NewSequenceExpression(exprs, span.New(start, end))
	}
	return expr
}

// parseAssignmentExpression implements spec §4.3's cover grammar: the left
// side is parsed as an ordinary expression, then — only if an assignment
// operator follows — reinterpreted as an assignment target.
func (p *Parser) parseAssignmentExpression() ast.Expr {
	left := p.parseBinaryExpression(precLogicalOr)

	if assignmentOperators[p.cur.Kind] {
		opTok := p.cur
		if !isValidAssignmentTarget(left) {
			p.addError(diagnostics.InvalidAssignment, "invalid assignment target", left.GetSpan())
		}
		p.advance()
		value := p.parseAssignmentExpression() // right-associative
		return ast.NewAssignmentExpression(opTok.Kind.String(), left, value,
			span.New(left.GetSpan().Start, value.GetSpan().End))
	}
	return left
}

// isValidAssignmentTarget implements the cover-grammar restriction: only
// Identifier and MemberExpression are valid targets (spec §4.3).
func isValidAssignmentTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	default:
		return false
	}
}

// parseBinaryExpression is precedence-climbing over the binary/logical
// operator table; minPrec is the lowest precedence this call will consume.
// Exponential (`**`) is right-associative; every other binary operator is
// left-associative (spec §4.3).
func (p *Parser) parseBinaryExpression(minPrec int) ast.Expr {
	left := p.parseUnaryExpression()

	for {
		prec, ok := binaryPrecedence[p.cur.Kind]
		if !ok || prec < minPrec {
			return left
		}
		opTok := p.cur
		p.advance()

		nextMin := prec + 1
		if opTok.Kind == lexer.StarStar {
			nextMin = prec // right-associative: same precedence on the right
		}
		right := p.parseBinaryExpression(nextMin)

		sp := span.New(left.GetSpan().Start, right.GetSpan().End)
		if opTok.Kind == lexer.AmpAmp || opTok.Kind == lexer.PipePipe {
			left = ast.NewLogicalExpression(opTok.Kind.String(), left, right, sp)
		} else {
			left = ast.NewBinaryExpression(opTok.Kind.String(), left, right, sp)
		}
	}
}

func (p *Parser) parseUnaryExpression() ast.Expr {
	switch p.cur.Kind {
	case lexer.Plus, lexer.Minus, lexer.Bang:
		opTok := p.cur
		p.advance()
		arg := p.parseUnaryExpression()
		return ast.NewUnaryExpression(opTok.Kind.String(), arg, span.New(opTok.Span.Start, arg.GetSpan().End))
	case lexer.PlusPlus, lexer.MinusMinus:
		opTok := p.cur
		p.advance()
		arg := p.parseUnaryExpression()
		return ast.NewUpdateExpression(opTok.Kind.String(), arg, true, span.New(opTok.Span.Start, arg.GetSpan().End))
	default:
		return p.parsePostfixExpression()
	}
}

func (p *Parser) parsePostfixExpression() ast.Expr {
	expr := p.parseCallMemberExpression()
	if (p.check(lexer.PlusPlus) || p.check(lexer.MinusMinus)) && !p.cur.IsOnNewLine {
		opTok := p.cur
		p.advance()
		return ast.NewUpdateExpression(opTok.Kind.String(), expr, false, span.New(expr.GetSpan().Start, opTok.Span.End))
	}
	return expr
}

func (p *Parser) parseCallMemberExpression() ast.Expr {
	expr := p.parsePrimaryExpression()
	for {
		switch p.cur.Kind {
		case lexer.Dot:
			p.advance()
			propTok := p.expect(lexer.Identifier)
			prop := ast.NewIdentifier(p.arena.Intern(propTok.Literal), propTok.Span)
			expr = ast.NewMemberExpression(expr, prop, false, span.New(expr.GetSpan().Start, propTok.Span.End))
		case lexer.LBracket:
			p.advance()
			index := p.parseExpression()
			end := p.cur.Span.End
			p.expect(lexer.RBracket)
			expr = ast.NewMemberExpression(expr, index, true, span.New(expr.GetSpan().Start, end))
		case lexer.LParen:
			args, end := p.parseArgumentList()
			expr = ast.NewCallExpression(expr, args, span.New(expr.GetSpan().Start, end))
		default:
			return expr
		}
	}
}

// parseArgumentList parses `(a, b, c)` with optional trailing comma (spec
// §4.3); `()` with nothing inside is a valid empty call, but a bare `()`
// used as a grouping expression (handled in parsePrimaryExpression) is not.
func (p *Parser) parseArgumentList() ([]ast.Expr, uint32) {
	p.expect(lexer.LParen)
	args := parseCommaList(p, lexer.RParen, p.parseAssignmentExpression)
	end := p.cur.Span.End
	p.expect(lexer.RParen)
	return args, end
}

func (p *Parser) parsePrimaryExpression() ast.Expr {
	tok := p.cur
	switch tok.Kind {
	case lexer.Number:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.addError(diagnostics.InvalidNumber, "invalid number literal", tok.Span)
		}
		return ast.NewNumberLiteral(v, tok.Span)
	case lexer.String:
		p.advance()
		return ast.NewStringLiteral(tok.Literal, tok.Span)
	case lexer.True:
		p.advance()
		return ast.NewBooleanLiteral(true, tok.Span)
	case lexer.False:
		p.advance()
		return ast.NewBooleanLiteral(false, tok.Span)
	case lexer.Null:
		p.advance()
		return ast.NewNullLiteral(tok.Span)
	case lexer.Identifier:
		p.advance()
		return ast.NewIdentifier(p.arena.Intern(tok.Literal), tok.Span)
	case lexer.This:
		p.advance()
		return ast.NewThisExpression(tok.Span)
	case lexer.Super:
		p.advance()
		return ast.NewSuperExpression(tok.Span)
	case lexer.NewKeyword:
		return p.parseNewExpression()
	case lexer.Function:
		return p.parseFunctionExpression()
	case lexer.LBracket:
		return p.parseArrayExpression()
	case lexer.LParen:
		return p.parseParenthesizedExpression()
	default:
		p.addError(diagnostics.UnexpectedToken, "unexpected token "+tok.Kind.String(), tok.Span)
		p.advance()
		return ast.NewNullLiteral(tok.Span)
	}
}

func (p *Parser) parseNewExpression() ast.Expr {
	start := p.cur.Span.Start
	p.expect(lexer.NewKeyword)
	callee := p.parseCallMemberCallee()
	args, end := p.parseArgumentList()
	return ast.NewNewExpression(callee, args, span.New(start, end))
}

// parseCallMemberCallee parses the callee of a `new` expression: member
// access is allowed, but a trailing call is not consumed here (it belongs
// to the `new` expression's own argument list).
func (p *Parser) parseCallMemberCallee() ast.Expr {
	expr := p.parsePrimaryExpression()
	for {
		switch p.cur.Kind {
		case lexer.Dot:
			p.advance()
			propTok := p.expect(lexer.Identifier)
			prop := ast.NewIdentifier(p.arena.Intern(propTok.Literal), propTok.Span)
			expr = ast.NewMemberExpression(expr, prop, false, span.New(expr.GetSpan().Start, propTok.Span.End))
		case lexer.LBracket:
			p.advance()
			index := p.parseExpression()
			end := p.cur.Span.End
			p.expect(lexer.RBracket)
			expr = ast.NewMemberExpression(expr, index, true, span.New(expr.GetSpan().Start, end))
		default:
			return expr
		}
	}
}

func (p *Parser) parseFunctionExpression() ast.Expr {
	start := p.cur.Span.Start
	p.expect(lexer.Function)
	var id *ast.Identifier
	if p.check(lexer.Identifier) {
		tok := p.cur
		p.advance()
		id = ast.NewIdentifier(p.arena.Intern(tok.Literal), tok.Span)
	}
	params := p.parseParameterList()
	body := p.parseFunctionBody()
	return ast.NewFunctionExpression(id, params, body, span.New(start, body.Span.End))
}

func (p *Parser) parseArrayExpression() ast.Expr {
	start := p.cur.Span.Start
	p.expect(lexer.LBracket)
	elements := parseCommaList(p, lexer.RBracket, p.parseAssignmentExpression)
	end := p.cur.Span.End
	p.expect(lexer.RBracket)
	return ast.NewArrayExpression(elements, span.New(start, end))
}

func (p *Parser) parseParenthesizedExpression() ast.Expr {
	start := p.cur.Span.Start
	p.expect(lexer.LParen)
	if p.check(lexer.RParen) {
		end := p.cur.Span.End
		p.advance()
		sp := span.New(start, end)
		p.addError(diagnostics.EmptyParenthesizedExpression, "empty parenthesized expression", sp)
		return ast.NewNullLiteral(sp)
	}
	expr := p.parseExpression()
	end := p.cur.Span.End
	p.expect(lexer.RParen)
	return ast.NewParenthesizedExpression(expr, span.New(start, end))
}
