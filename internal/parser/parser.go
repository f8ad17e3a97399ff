// Package parser builds a Wave Program from a token stream. It is grounded
// on go-dws's internal/parser (helpers.go's peek/advance/check/match/consume
// scaffolding) and on dphaener-conduit's compiler/parser/parser_expr.go for
// the Pratt precedence-climbing shape, adapted to spec §4.3's grammar:
// statement dispatch, automatic semicolon insertion, and cover-grammar
// assignment-target reinterpretation.
package parser

import (
	"fmt"

	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/diagnostics"
	"github.com/Sang-it/wave/internal/lexer"
	"github.com/Sang-it/wave/internal/span"
)

// precedence levels, lowest to highest (spec §4.3).
const (
	precLowest = iota
	precAssignment
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precExponential
	precUnary
	precCallMember
)

var binaryPrecedence = map[lexer.Kind]int{
	lexer.PipePipe:   precLogicalOr,
	lexer.AmpAmp:     precLogicalAnd,
	lexer.Pipe:       precBitwiseOr,
	lexer.Caret:      precBitwiseXor,
	lexer.Amp:        precBitwiseAnd,
	lexer.Eq:         precEquality,
	lexer.NotEq:      precEquality,
	lexer.Lt:         precRelational,
	lexer.LtEq:       precRelational,
	lexer.Gt:         precRelational,
	lexer.GtEq:       precRelational,
	lexer.Plus:       precAdditive,
	lexer.Minus:      precAdditive,
	lexer.Star:       precMultiplicative,
	lexer.Slash:      precMultiplicative,
	lexer.Percent:    precMultiplicative,
	lexer.StarStar:   precExponential,
}

var assignmentOperators = map[lexer.Kind]bool{
	lexer.Assign: true, lexer.PlusEq: true, lexer.MinusEq: true,
	lexer.StarEq: true, lexer.SlashEq: true, lexer.PercentEq: true,
	lexer.StarStarEq: true, lexer.AmpAmpEq: true, lexer.PipePipeEq: true,
	lexer.AmpEq: true, lexer.PipeEq: true, lexer.CaretEq: true,
}

// Parser holds all transient state for one parse.
type Parser struct {
	l     *lexer.Lexer
	arena *ast.Arena

	cur lexer.Token

	errors []diagnostics.Diagnostic

	inFunction  bool // enables `return` (spec §4.3 statement dispatch)
	inSingleStmt bool // true while parsing the lone-statement body of if/while
	panicked    bool
}

// New creates a Parser over l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, arena: ast.NewArena()}
	p.advance()
	return p
}

// Errors returns every syntax diagnostic recorded during the parse.
func (p *Parser) Errors() []diagnostics.Diagnostic {
	errs := append([]diagnostics.Diagnostic{}, p.l.Errors()...)
	return append(errs, p.errors...)
}

func (p *Parser) addError(kind diagnostics.Kind, msg string, sp span.Span) {
	p.errors = append(p.errors, diagnostics.New(kind, msg, sp))
}

func (p *Parser) advance() {
	p.cur = p.l.NextToken()
}

func (p *Parser) peek() lexer.Token {
	return p.l.Peek(0)
}

func (p *Parser) check(k lexer.Kind) bool {
	return p.cur.Kind == k
}

func (p *Parser) match(k lexer.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it matches k, else records an
// ExpectToken diagnostic and returns the (unconsumed) current token so
// callers can keep building a best-effort node.
func (p *Parser) expect(k lexer.Kind) lexer.Token {
	if p.check(k) {
		tok := p.cur
		p.advance()
		return tok
	}
	p.addError(diagnostics.ExpectToken,
		fmt.Sprintf("expected %s, found %s", k, p.cur.Kind), p.cur.Span)
	return p.cur
}

// ParseProgram parses the whole token stream; it never returns an error to
// the caller (spec §4.3) — syntax errors are collected via Errors().
func (p *Parser) ParseProgram() *ast.Program {
	start := p.cur.Span.Start
	var body []ast.Stmt
	for !p.check(lexer.EOF) {
		stmt := p.parseStatementSynchronized()
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	end := p.cur.Span.End
	return &ast.Program{Body: body, Span: span.New(start, end)}
}

// parseStatementSynchronized isolates one statement's failure from the rest
// of the file: on a panic-mode error it advances to the next statement
// boundary (spec §4.3 "Failure").
func (p *Parser) parseStatementSynchronized() ast.Stmt {
	before := len(p.errors)
	stmt := p.parseStatement()
	if len(p.errors) > before && stmt == nil {
		p.synchronize()
	}
	return stmt
}

func (p *Parser) synchronize() {
	for !p.check(lexer.EOF) {
		if p.check(lexer.Semicolon) {
			p.advance()
			return
		}
		if p.check(lexer.RBrace) {
			return
		}
		switch p.cur.Kind {
		case lexer.Let, lexer.Const, lexer.If, lexer.While, lexer.Function,
			lexer.Class, lexer.Return, lexer.Break, lexer.Continue, lexer.Import:
			return
		}
		p.advance()
	}
}

// consumeSemicolon implements automatic semicolon insertion (spec §4.3):
// succeeds silently on `;` (consumed), `}`, EOF, or a token starting on a
// new line; otherwise records AutoSemicolonInsertion but does not block
// parsing from continuing.
func (p *Parser) consumeSemicolon(stmtSpan span.Span) {
	if p.match(lexer.Semicolon) {
		return
	}
	if p.check(lexer.RBrace) || p.check(lexer.EOF) || p.cur.IsOnNewLine {
		return
	}
	p.addError(diagnostics.AutoSemicolonInsertion, "missing semicolon", stmtSpan)
}
