package ast_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/Sang-it/wave/internal/ast"
	"github.com/Sang-it/wave/internal/lexer"
	"github.com/Sang-it/wave/internal/parser"
)

// TestDumpStable snapshots the debug-dump of a representative program,
// exercising spec §8's "parsing ... yields identical spans" property at the
// tree-shape level: the same source always dumps to the same text.
func TestDumpStable(t *testing.T) {
	source := `
class Animal {
	constructor(name) {
		this.name = name;
	}
	speak() {
		print(this.name);
	}
}

class Dog extends Animal {
	speak() {
		super.speak();
		print("woof");
	}
}

let pets = [new Animal("Cat"), new Dog("Rex")];
let i = 0;
while (i < 2) {
	pets[i].speak();
	i = i + 1;
}
`
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(l.Errors()) > 0 || len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: lexer=%v parser=%v", l.Errors(), p.Errors())
	}

	snaps.MatchSnapshot(t, ast.Dump(program))
}
