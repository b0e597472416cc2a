// Package deftable implements the definition table of spec.md 4.E: an
// in-memory index from names to {function, struct, global-var}
// definitions. Table is generic over the key type, so it can be keyed
// module-locally by a ResolvedName string or globally by ast.GlobalName,
// matching spec.md's "parameterized by the key type" instruction. The
// pipeline itself instantiates only the ast.GlobalName form (built by D,
// read by F); component C binds names through its ScopeTable instead.
// Grounded on the teacher's internal/iface/iface.go Exports map with its
// insert/get accessor discipline, generalized to three disjoint kind-maps
// per spec.md invariant 3 ("a definition is in exactly one of public or
// private, never both").
package deftable

import (
	"fmt"

	"github.com/ing-lang/ingc/internal/ast"
)

// Table indexes definitions of kind V by key K. No removal operation is
// provided (spec.md 4.E).
type Table[K comparable, V any] struct {
	entries map[K]V
}

// New creates an empty Table.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{entries: map[K]V{}}
}

// Insert adds key -> def. It is idempotent-check: inserting a key that is
// already present, whatever the value, is a programmer-logic error and panics
// (spec.md invariant 2 guarantees keys are unique by construction; a
// collision here means a bug in the caller, not bad user input).
func (t *Table[K, V]) Insert(key K, def V) {
	if _, exists := t.entries[key]; exists {
		panic(fmt.Sprintf("deftable: duplicate key %v", key))
	}
	t.entries[key] = def
}

// Get looks up key, returning the zero value and false if absent.
func (t *Table[K, V]) Get(key K) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Keys returns every key currently indexed, in no particular order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len reports the number of entries.
func (t *Table[K, V]) Len() int { return len(t.entries) }

// DefinitionTable is the three-map structure of spec.md 4.D, indexed by K
// (a ResolvedName string module-locally, an ast.GlobalName once merged).
type DefinitionTable[K comparable] struct {
	Functions  *Table[K, *ast.FnDef]
	Structs    *Table[K, *ast.StructDef]
	GlobalVars *Table[K, *ast.VarDecl]
}

// NewDefinitionTable creates an empty, fully initialized DefinitionTable.
func NewDefinitionTable[K comparable]() *DefinitionTable[K] {
	return &DefinitionTable[K]{
		Functions:  New[K, *ast.FnDef](),
		Structs:    New[K, *ast.StructDef](),
		GlobalVars: New[K, *ast.VarDecl](),
	}
}
