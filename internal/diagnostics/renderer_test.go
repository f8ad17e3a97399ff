package diagnostics

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/Sang-it/wave/internal/span"
)

// TestFormatErrorsStable snapshots rendered diagnostic output, exercising
// spec §8's "pretty-printing is stable" property: the same Diagnostic
// sequence against the same source always renders identically.
func TestFormatErrorsStable(t *testing.T) {
	source := "let x = 1 +;\nprint(x);\n"
	diags := []Diagnostic{
		New(UnexpectedToken, "expected an expression after '+'", span.New(10, 11)).WithHelp("remove the trailing operator or add a right-hand operand"),
		NewRuntime(VariableNotFound, "variable \"x\" is not defined", span.New(19, 20)),
	}

	renderer := NewRenderer(ASCIITheme, false)
	snaps.MatchSnapshot(t, FormatErrors(diags, renderer, source, "example.wv"))
}
