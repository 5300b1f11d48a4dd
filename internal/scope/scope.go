// Package scope implements the lexical scope chain: a (parent,
// name→ref) mapping the lowerer builds as it walks into blocks,
// functions, and impl bodies. Trimmed to three operations — declare,
// lookup, and strict (current-frame-only) lookup — since nothing
// downstream walks child scopes or tracks loop-enclosing state (this
// language's statement set has no break/continue/switch).
package scope

import "github.com/hassan/langcore/internal/ir"

// Scope is one frame of the chain. Bindings is a plain map; scopes are
// built single-threaded during lowering, so no locking is needed.
type Scope struct {
	Parent   *Scope
	Bindings map[string]ir.Ref
}

// New creates a root scope with no parent (the builtin environment).
func New() *Scope {
	return &Scope{Bindings: make(map[string]ir.Ref)}
}

// Child creates a new scope nested inside s.
func (s *Scope) Child() *Scope {
	return &Scope{Parent: s, Bindings: make(map[string]ir.Ref)}
}

// Declare adds name to the current frame. A second Declare of the same
// name in the same frame overwrites the first — callers that must reject
// redeclaration check StrictLookup themselves before calling Declare.
func (s *Scope) Declare(name string, ref ir.Ref) {
	s.Bindings[name] = ref
}

// Lookup walks from s up to the root, returning the first binding found.
func (s *Scope) Lookup(name string) (ir.Ref, bool) {
	for f := s; f != nil; f = f.Parent {
		if ref, ok := f.Bindings[name]; ok {
			return ref, true
		}
	}
	return nil, false
}

// StrictLookup checks only the current frame, ignoring parents.
func (s *Scope) StrictLookup(name string) (ir.Ref, bool) {
	ref, ok := s.Bindings[name]
	return ref, ok
}
