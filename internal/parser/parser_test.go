package parser

import (
	"testing"

	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	return prog
}

func TestParsePrecedence(t *testing.T) {
	prog := parseSource(t, "const x = 1 + 2 * 3 ** 2;")
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", prog.Body[0])
	}
	bin, ok := decl.Declarations[0].Init.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected top-level BinaryExpression for +, got %T", decl.Declarations[0].Init)
	}
	if bin.Operator != "+" {
		t.Fatalf("expected + at the top (lowest precedence wins last), got %s", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected * on the right of +, got %#v", bin.Right)
	}
	exp, ok := right.Right.(*ast.BinaryExpression)
	if !ok || exp.Operator != "**" {
		t.Fatalf("expected ** nested under *, got %#v", right.Right)
	}
}

func TestParseDanglingElse(t *testing.T) {
	prog := parseSource(t, "if (a) if (b) c(); else d();")
	ifStmt := prog.Body[0].(*ast.IfStatement)
	inner := ifStmt.Consequent.(*ast.IfStatement)
	if inner.Alternate == nil {
		t.Fatalf("expected else to bind to the nearest if")
	}
	if ifStmt.Alternate != nil {
		t.Fatalf("expected outer if to have no else clause")
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	p := New(lexer.New("(1 + 2) = 5;"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected InvalidAssignment error")
	}
}

func TestParseClassWithInheritance(t *testing.T) {
	src := `
class A { constructor(x){ this.x = x; } get(){ return this.x; } }
class B extends A { constructor(x){ super(x); } }
`
	prog := parseSource(t, src)
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 class declarations, got %d", len(prog.Body))
	}
	b := prog.Body[1].(*ast.ClassDeclaration)
	if b.SuperClass == nil {
		t.Fatalf("expected B to record a super_class")
	}
}

func TestParseTrailingComma(t *testing.T) {
	prog := parseSource(t, "const a = [1, 2, 3,];")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	arr := decl.Declarations[0].Init.(*ast.ArrayExpression)
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
}

func TestParseAutoSemicolonInsertion(t *testing.T) {
	p := New(lexer.New("let x = 1\nlet y = 2;"))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("expected ASI to succeed across a newline, got errors: %v", p.Errors())
	}
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}
}

func TestParseMissingSemicolon(t *testing.T) {
	p := New(lexer.New("let x = 1 let y = 2;"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected AutoSemicolonInsertion error when no newline separates statements")
	}
}

func TestParseEmptyProgram(t *testing.T) {
	prog := parseSource(t, "")
	if len(prog.Body) != 0 {
		t.Fatalf("expected empty program, got %d statements", len(prog.Body))
	}
}
