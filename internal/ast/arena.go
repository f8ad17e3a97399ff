package ast

import "github.com/Sang-it/wave/internal/span"

// Arena owns every node produced while parsing one source unit. Go's garbage
// collector already reclaims the node graph wholesale once the Program and
// everything reachable from it falls out of scope, so Arena does not bump-
// allocate in the original sense; what it preserves from the design is the
// single shared Interner, so that every identifier parsed from the same
// source shares Atom storage. Nodes themselves are built with the package's
// New* functions, not through the Arena.
type Arena struct {
	interner *span.Interner
}

// NewArena creates an empty Arena, one per parse.
func NewArena() *Arena {
	return &Arena{interner: span.NewInterner()}
}

// Intern returns the canonical Atom for s.
func (a *Arena) Intern(s string) span.Atom {
	return a.interner.Intern(s)
}
