package diagnostics

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Theme selects the box-drawing character set used to underline a labelled
// span, grounded on original_source's wave_diagnostics::graphical_theme
// (spec §6: "a themable character set (ASCII or Unicode box-drawing)").
type Theme struct {
	Gutter   string // vertical line in the left gutter, e.g. "|" or "│"
	Underline string // caret/underline character, e.g. "^" or "─"
	Corner   string // corner connecting the underline to the help text
}

// ASCIITheme is the portable fallback theme.
var ASCIITheme = Theme{Gutter: "|", Underline: "^", Corner: "`"}

// UnicodeTheme uses box-drawing characters.
var UnicodeTheme = Theme{Gutter: "│", Underline: "─", Corner: "╰"}

// Renderer formats Diagnostics against source text. Color is grounded on
// dphaener-conduit's internal/cli/ui/errors.go: a *color.Color disabled
// outright when NO_COLOR is set or the destination is not a terminal,
// rather than Wave hand-rolling ANSI escape sequences.
type Renderer struct {
	Theme   Theme
	colorOn bool
}

// NewRenderer builds a Renderer. wantColor requests coloring; it is downgraded
// to off whenever the NO_COLOR environment variable is present and
// non-empty, per spec §6.
func NewRenderer(theme Theme, wantColor bool) *Renderer {
	if v := os.Getenv("NO_COLOR"); v != "" {
		wantColor = false
	}
	return &Renderer{Theme: theme, colorOn: wantColor}
}

func (r *Renderer) style(c *color.Color, s string) string {
	if !r.colorOn {
		return s
	}
	return c.Sprint(s)
}

// Format renders one Diagnostic: a header line, the offending source line,
// an underline beneath the labelled span, and optional help text.
func (r *Renderer) Format(d Diagnostic, source, file string) string {
	pos := resolvePosition(source, d.Span.Start)
	var b strings.Builder

	headerColor := color.New(color.FgRed, color.Bold)
	if d.Category == Syntax {
		headerColor = color.New(color.FgYellow, color.Bold)
	}

	fmt.Fprintf(&b, "%s in %s:%d:%d\n",
		r.style(headerColor, string(d.Kind)), file, pos.Line, pos.Column)

	line := sourceLine(source, pos.Line)
	lineNumStr := fmt.Sprintf("%d", pos.Line)
	fmt.Fprintf(&b, " %s %s %s\n", lineNumStr, r.Theme.Gutter, line)

	pad := strings.Repeat(" ", 1+len(lineNumStr)+1+utf8.RuneCountInString(r.Theme.Gutter)+1+pos.Column-1)
	width := int(d.Span.Len())
	if width < 1 {
		width = 1
	}
	underline := strings.Repeat(r.Theme.Underline, width)
	fmt.Fprintf(&b, "%s%s %s\n", pad, r.style(color.New(color.FgRed), underline), d.Message)

	if d.Help != "" {
		fmt.Fprintf(&b, "%s%s help: %s\n", pad, r.Theme.Corner, d.Help)
	}

	return b.String()
}
