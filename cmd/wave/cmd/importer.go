package cmd

import (
	"fmt"
	"os"

	"github.com/Sang-it/wave/internal/interp"
	"github.com/Sang-it/wave/internal/lexer"
	"github.com/Sang-it/wave/internal/parser"
)

// fileImporter resolves `import { ... } from "path"` declarations against
// the filesystem, relative to the current working directory (spec §4.4.3).
type fileImporter struct{}

func newFileImporter() *fileImporter {
	return &fileImporter{}
}

// Import reads, lexes, parses, and evaluates the module at path in its own
// fresh global environment, returning that environment so the caller can
// pull out the bindings its import specifiers name.
func (f *fileImporter) Import(path string) (*interp.Environment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	l := lexer.New(string(content))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, fmt.Errorf("%s has %d syntax error(s)", path, len(errs))
	}

	moduleRuntime := interp.New(os.Stdout, interp.WithImporter(newFileImporter()))
	result := moduleRuntime.Eval(program)
	if diag, ok := interp.Diagnostic(result, program.Span); ok {
		return nil, fmt.Errorf("%s: %s", path, diag.Message)
	}

	return moduleRuntime.Globals, nil
}
