// Package resolve implements the per-module resolver (component C):
// assigning module-resolved names to every reference inside a module via
// a lexical ScopeTable, grounded on the *namespace-per-binding-kind* idea
// in the teacher's internal/link/env.go GlobalEnv, generalized to
// spec.md 4.C's three independent kind-namespaces with a shadow-index
// counter, which has no direct teacher analogue and is built straight
// from the spec's stated algorithm.
package resolve

import (
	"fmt"

	"github.com/ing-lang/ingc/internal/ast"
)

type frame struct {
	bindings [3]map[string]string // indexed by ast.SymbolKind
}

func newFrame() *frame {
	return &frame{bindings: [3]map[string]string{
		ast.SymbolVar:    {},
		ast.SymbolFn:     {},
		ast.SymbolStruct: {},
	}}
}

// ScopeTable implements spec.md 4.C's scope_enter/scope_exit/scope_bind/
// scope_lookup contract. shadowCounts is a single counter per raw name
// shared across all three kinds and all frames, so that two bindings of
// the same raw name (even of different kinds, e.g. a variable and a
// function both named "x") never produce the same ResolvedName — required
// for invariant 2 ("module_resolved is unique within its module").
type ScopeTable struct {
	frames       []*frame
	shadowCounts map[string]int
}

// NewScopeTable creates an empty table with no open frames.
func NewScopeTable() *ScopeTable {
	return &ScopeTable{shadowCounts: map[string]int{}}
}

// ScopeEnter pushes a new, empty frame.
func (s *ScopeTable) ScopeEnter() {
	s.frames = append(s.frames, newFrame())
}

// ScopeExit pops the top frame.
func (s *ScopeTable) ScopeExit() {
	if len(s.frames) == 0 {
		panic("resolve: ScopeExit with no open frame")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// RedefinitionError reports that raw was already bound in the current
// (innermost) frame.
type RedefinitionError struct{ Raw string }

func (e *RedefinitionError) Error() string { return fmt.Sprintf("redefinition of %q in the same scope", e.Raw) }

// ScopeBind introduces a new binding of raw (in the given kind namespace)
// in the top frame, returning its freshly minted ResolvedName. Redefining
// raw in the same frame is an error; redefining it in a deeper frame
// shadows the outer binding (spec.md 4.C).
func (s *ScopeTable) ScopeBind(raw string, kind ast.SymbolKind) (string, error) {
	if len(s.frames) == 0 {
		panic("resolve: ScopeBind with no open frame")
	}
	top := s.frames[len(s.frames)-1]
	if _, exists := top.bindings[kind][raw]; exists {
		return "", &RedefinitionError{Raw: raw}
	}
	idx := s.shadowCounts[raw]
	s.shadowCounts[raw] = idx + 1
	resolved := fmt.Sprintf("%d_%s", idx, raw)
	top.bindings[kind][raw] = resolved
	return resolved, nil
}

// ScopeLookup searches frames top-down for the most recent binding of raw
// in the given kind namespace.
func (s *ScopeTable) ScopeLookup(raw string, kind ast.SymbolKind) (string, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].bindings[kind][raw]; ok {
			return v, true
		}
	}
	return "", false
}

// Depth reports the number of currently open frames.
func (s *ScopeTable) Depth() int { return len(s.frames) }
