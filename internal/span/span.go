// Package span provides the compact source-position and interned-string
// types shared by every stage of the Wave pipeline: the lexer stamps each
// token with a Span, the parser copies those spans onto AST nodes, and the
// diagnostics package renders a Span back against the original source text.
package span

// Span is a byte range [Start, End) into a single source buffer. It carries
// no reference to the buffer itself; callers resolve it against source text
// only when needed (diagnostics rendering, debugging), matching the "late
// binding of source text" contract used throughout the pipeline.
type Span struct {
	Start uint32
	End   uint32
}

// New builds a Span, normalizing an inverted range rather than panicking;
// callers that construct spans from token boundaries should never produce
// one, but defensive construction keeps a lexer bug from corrupting an
// otherwise-valid AST.
func New(start, end uint32) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}

// Contains reports whether other lies entirely within s, the relation the
// span-containment invariant (every node's span is fully contained within
// its parent's span) is stated in.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Len returns the byte length covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Slice returns the text the span covers within source. It panics if the
// span falls outside source, which indicates a bug in whatever produced the
// span rather than a condition callers should recover from.
func (s Span) Slice(source string) string {
	return source[s.Start:s.End]
}
