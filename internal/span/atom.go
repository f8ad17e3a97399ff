package span

// Atom is an identifier or short string value. It is a distinct named string
// type rather than a bare string so call sites document intent (an Atom is
// always the product of the Interner, never ad-hoc string concatenation),
// matching original_source's wave_span::Atom: small, cheap to compare, cheap
// to pass by value.
type Atom string

// String satisfies fmt.Stringer so Atom prints bare in error messages and
// %v formatting instead of as a quoted Go string constant.
func (a Atom) String() string {
	return string(a)
}

// Interner deduplicates identifier and string-literal text so repeated
// occurrences of the same name share one backing string. Go's strings are
// already immutable value types with structural equality, so interning here
// buys memory locality rather than comparison speed, but it keeps the Atom
// contract ("cheap to clone; comparable") honest for large programs with
// many repeated identifiers.
type Interner struct {
	table map[string]Atom
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]Atom)}
}

// Intern returns the canonical Atom for s, inserting it on first sight.
func (in *Interner) Intern(s string) Atom {
	if a, ok := in.table[s]; ok {
		return a
	}
	a := Atom(s)
	in.table[s] = a
	return a
}
