// Package diagnostics renders labelled, source-annotated errors for every
// stage of the Wave pipeline. It is grounded on go-dws's
// internal/errors.CompilerError — a Message/Source/File/Pos struct with a
// Format(color bool) method — generalized to carry a Kind from the spec §6
// taxonomy and an optional help string, and restyled with
// github.com/fatih/color instead of hand-rolled ANSI escapes.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/Sang-it/wave/internal/span"
)

// Category distinguishes recoverable syntax diagnostics from fatal runtime
// ones (spec §7 "Kinds").
type Category int

const (
	Syntax Category = iota
	Runtime
)

// Diagnostic is one labelled, source-annotated error. Source text is bound
// late: a Diagnostic can be constructed by the lexer or parser before the
// full source is available to the renderer, and the renderer always
// resolves Span against whatever source/file it is given at Format time.
type Diagnostic struct {
	Kind     Kind
	Category Category
	Message  string
	Span     span.Span
	Help     string
}

// New builds a syntax Diagnostic.
func New(kind Kind, message string, sp span.Span) Diagnostic {
	return Diagnostic{Kind: kind, Category: Syntax, Message: message, Span: sp}
}

// NewRuntime builds a runtime Diagnostic.
func NewRuntime(kind Kind, message string, sp span.Span) Diagnostic {
	return Diagnostic{Kind: kind, Category: Runtime, Message: message, Span: sp}
}

// WithHelp attaches help text and returns the updated Diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// position is a 1-based line/column pair resolved from a byte offset.
type position struct {
	Line   int
	Column int
}

// resolvePosition walks source once to translate a byte offset into a
// 1-based line/column pair, mirroring go-dws's getSourceLine/Position
// bookkeeping but computed on demand instead of carried on every token.
func resolvePosition(source string, offset uint32) position {
	line, col := 1, 1
	for i, r := range source {
		if uint32(i) >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return position{Line: line, Column: col}
}

func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// FormatErrors renders a sequence of Diagnostics in source order, one block
// per diagnostic, using the given Renderer (spec §7: "Multiple diagnostics
// print in source order").
func FormatErrors(diags []Diagnostic, r *Renderer, source, file string) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(r.Format(d, source, file))
		b.WriteString("\n")
	}
	return b.String()
}
