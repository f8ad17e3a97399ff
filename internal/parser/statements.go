package parser

import (
	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
	"github.com/Sang-it/wave/internal/lexer"
	"github.com/Sang-it/wave/internal/span"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case lexer.LBrace:
		return p.parseBlockStatement()
	case lexer.If:
		return p.parseIfStatement()
	case lexer.While:
		return p.parseWhileStatement()
	case lexer.Let, lexer.Const:
		return p.parseVariableDeclaration()
	case lexer.Return:
		return p.parseReturnStatement()
	case lexer.Break:
		return p.parseBreakStatement()
	case lexer.Continue:
		return p.parseContinueStatement()
	case lexer.Function:
		return p.parseFunctionDeclaration()
	case lexer.Class:
		if p.inSingleStmt {
			p.addError(diagnostics.ClassDeclarationMisplacement,
				"a class declaration cannot be the body of an if/while statement", p.cur.Span)
		}
		return p.parseClassDeclaration()
	case lexer.Import:
		return p.parseModuleDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

// parseSingleStatementBody parses the body of an if/while clause where the
// grammar forbids a bare lexical declaration or class declaration (spec
// §4.3 "class → declaration (forbidden as a single-statement context
// body)").
func (p *Parser) parseSingleStatementBody() ast.Stmt {
	if p.check(lexer.Let) || p.check(lexer.Const) {
		p.addError(diagnostics.LexicalDeclarationSingleStmt,
			"lexical declaration cannot appear as the sole body of an if/while statement", p.cur.Span)
	}
	prev := p.inSingleStmt
	p.inSingleStmt = true
	stmt := p.parseStatement()
	p.inSingleStmt = prev
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	start := p.cur.Span.Start
	p.expect(lexer.LBrace)
	prevSingle := p.inSingleStmt
	p.inSingleStmt = false
	var body []ast.Stmt
	for !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		stmt := p.parseStatementSynchronized()
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	p.inSingleStmt = prevSingle
	end := p.cur.Span.End
	p.expect(lexer.RBrace)
	return ast.NewBlockStatement(body, span.New(start, end))
}

func (p *Parser) parseIfStatement() ast.Stmt {
	start := p.cur.Span.Start
	p.expect(lexer.If)
	p.expect(lexer.LParen)
	test := p.parseExpression()
	p.expect(lexer.RParen)
	consequent := p.parseSingleStatementBody()
	var alternate ast.Stmt
	// Dangling-else: `else` always binds to the nearest `if` because this
	// check happens immediately after parsing the consequent, before
	// returning to any enclosing if's own else-check.
	if p.match(lexer.Else) {
		alternate = p.parseSingleStatementBody()
	}
	end := p.cur.Span.Start
	if alternate != nil {
		end = alternate.GetSpan().End
	} else {
		end = consequent.GetSpan().End
	}
	return ast.NewIfStatement(test, consequent, alternate, span.New(start, end))
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	start := p.cur.Span.Start
	p.expect(lexer.While)
	p.expect(lexer.LParen)
	test := p.parseExpression()
	p.expect(lexer.RParen)
	body := p.parseSingleStatementBody()
	return ast.NewWhileStatement(test, body, span.New(start, body.GetSpan().End))
}

func (p *Parser) parseVariableDeclaration() ast.Stmt {
	start := p.cur.Span.Start
	kind := ast.Let
	if p.check(lexer.Const) {
		kind = ast.Const
	}
	p.advance()

	var decls []*ast.VariableDeclarator
	for {
		idTok := p.expect(lexer.Identifier)
		id := ast.NewIdentifier(p.arena.Intern(idTok.Literal), idTok.Span)
		var init ast.Expr
		declStart := idTok.Span.Start
		declEnd := idTok.Span.End
		if p.match(lexer.Assign) {
			init = p.parseAssignmentExpression()
			declEnd = init.GetSpan().End
		}
		decls = append(decls, ast.NewVariableDeclarator(id, init, span.New(declStart, declEnd)))
		if !p.match(lexer.Comma) {
			break
		}
	}
	end := p.cur.Span.Start
	if len(decls) > 0 {
		end = decls[len(decls)-1].Span.End
	}
	stmt := ast.NewVariableDeclaration(kind, decls, span.New(start, end))
	p.consumeSemicolon(stmt.Span)
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	start := p.cur.Span.Start
	end := p.cur.Span.End
	if !p.inFunction {
		p.addError(diagnostics.ReturnStatementOnlyInFunction,
			"return statement is only valid inside a function body", p.cur.Span)
	}
	p.advance()
	var arg ast.Expr
	if !p.check(lexer.Semicolon) && !p.check(lexer.RBrace) && !p.check(lexer.EOF) && !p.cur.IsOnNewLine {
		arg = p.parseExpression()
		end = arg.GetSpan().End
	}
	stmt := ast.NewReturnStatement(arg, span.New(start, end))
	p.consumeSemicolon(stmt.Span)
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Stmt {
	sp := p.cur.Span
	p.advance()
	stmt := ast.NewBreakStatement(sp)
	p.consumeSemicolon(sp)
	return stmt
}

func (p *Parser) parseContinueStatement() ast.Stmt {
	sp := p.cur.Span
	p.advance()
	stmt := ast.NewContinueStatement(sp)
	p.consumeSemicolon(sp)
	return stmt
}

func (p *Parser) parseFunctionDeclaration() ast.Stmt {
	start := p.cur.Span.Start
	p.expect(lexer.Function)
	if !p.check(lexer.Identifier) {
		p.addError(diagnostics.ExpectFunctionName, "expected a function name", p.cur.Span)
	}
	var id *ast.Identifier
	if p.check(lexer.Identifier) {
		tok := p.cur
		p.advance()
		id = ast.NewIdentifier(p.arena.Intern(tok.Literal), tok.Span)
	}
	params := p.parseParameterList()
	body := p.parseFunctionBody()
	return ast.NewFunctionDeclaration(id, params, body, span.New(start, body.Span.End))
}

// parseFunctionBody parses a brace-delimited block with `return` enabled.
func (p *Parser) parseFunctionBody() *ast.BlockStatement {
	prev := p.inFunction
	p.inFunction = true
	body := p.parseBlockStatement()
	p.inFunction = prev
	return body
}

// parseParameterList parses `(a, b, c)` with an optional trailing comma
// (spec §4.3 "Argument & parameter lists").
func (p *Parser) parseParameterList() []*ast.Identifier {
	p.expect(lexer.LParen)
	params := parseCommaList(p, lexer.RParen, func() *ast.Identifier {
		tok := p.expect(lexer.Identifier)
		return ast.NewIdentifier(p.arena.Intern(tok.Literal), tok.Span)
	})
	p.expect(lexer.RParen)
	return params
}

func (p *Parser) parseModuleDeclaration() ast.Stmt {
	start := p.cur.Span.Start
	p.expect(lexer.Import)
	p.expect(lexer.LBrace)
	specifiers := parseCommaList(p, lexer.RBrace, func() *ast.Identifier {
		tok := p.expect(lexer.Identifier)
		return ast.NewIdentifier(p.arena.Intern(tok.Literal), tok.Span)
	})
	p.expect(lexer.RBrace)
	p.expect(lexer.From)
	pathTok := p.expect(lexer.String)
	end := pathTok.Span.End
	stmt := ast.NewModuleDeclaration(specifiers, pathTok.Literal, span.New(start, end))
	p.consumeSemicolon(stmt.Span)
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	expr := p.parseExpression()
	stmt := ast.NewExpressionStatement(expr, expr.GetSpan())
	p.consumeSemicolon(stmt.Span)
	return stmt
}
