package interp

import "github.com/Sang-it/wave/internal/span"

// Environment is a scope-chain frame: a mapping from Atom to Value plus an
// optional outer frame (spec §3 "Environment"). Grounded directly on
// go-dws's internal/interp/runtime.Environment{store, outer} and its
// Get/Define/walk-the-chain algorithm; renamed to the spec's own
// vocabulary (get/define/extend) and keyed by span.Atom rather than
// go-dws's case-insensitive ident.Map, since Wave is not case-insensitive.
//
// Environments are reference-counted rather than left to gc alone (spec §3:
// "they are therefore reference-counted"; spec §9 design note: "An
// implementer may use reference counting without a cycle collector"). A
// frame made by NewEnclosedEnvironment starts with a count of one (its
// creator's hold) and retains its outer frame; each child frame extended
// from it adds one more. Block and call frames are released when they exit;
// class and instance frames are never released. A Function value does not
// retain the environment it captures, so a frame's count can reach zero
// while a closure still refers to it. Go's GC, not RefCount, decides when
// the backing store is reclaimed.
type Environment struct {
	store    map[span.Atom]Value
	outer    *Environment
	RefCount int
}

// NewEnvironment creates a root environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[span.Atom]Value)}
}

// NewEnclosedEnvironment implements `extend(outer)` (spec §4.4: "extend(outer)
// returns a fresh frame whose outer is the supplied parent").
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := &Environment{store: make(map[span.Atom]Value), outer: outer, RefCount: 1}
	if outer != nil {
		outer.Retain()
	}
	return env
}

// Get implements `get(name)`: walk outer links until hit, or report miss by
// returning ok=false (the caller turns that into VariableNotFound).
func (e *Environment) Get(name span.Atom) (Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// GetLocal looks up name in this frame only, without walking outer links.
func (e *Environment) GetLocal(name span.Atom) (Value, bool) {
	v, ok := e.store[name]
	return v, ok
}

// Define implements `define(name, value)`: bind in the current frame,
// overwriting any existing entry of the same name in that frame only (spec
// §3 invariant: "re-declaration in the same scope is permitted and
// replaces the prior binding").
func (e *Environment) Define(name span.Atom, value Value) {
	e.store[name] = value
}

// Assign walks the chain to find where name is already bound and
// overwrites it there, used by `=`/compound-assignment (spec §4.4
// "Expression semantics": assignment mutates "the binding in the enclosing
// scope", as distinct from `define`, which always binds locally). Returns
// false if no frame in the chain has the name.
func (e *Environment) Assign(name span.Atom, value Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = value
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return false
}

// Has reports whether name is reachable from this frame.
func (e *Environment) Has(name span.Atom) bool {
	_, ok := e.Get(name)
	return ok
}

// Outer returns the parent frame, or nil for the root environment.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Retain increments the reference count (spec §3/§9: environments "are
// shared" and "reference-counted").
func (e *Environment) Retain() *Environment {
	e.RefCount++
	return e
}

// Release decrements the reference count. When it reaches zero, the frame
// releases its own hold on its outer frame in turn, the same cascading
// release go-dws's defaultRefCountManager.DecrementRef performs for
// ObjectInstance chains.
func (e *Environment) Release() {
	e.RefCount--
	if e.RefCount <= 0 && e.outer != nil {
		e.outer.Release()
	}
}
