package ast

import "fmt"

// SymbolKind distinguishes the three independent lookup namespaces a raw
// name can live in within a single scope frame (spec.md 4.C).
type SymbolKind int

const (
	SymbolVar SymbolKind = iota
	SymbolFn
	SymbolStruct
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "var"
	case SymbolFn:
		return "fn"
	case SymbolStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// GlobalName is a module-resolved name qualified by the module that owns
// it. module is slash-joined ("/root/test/example" or, for a foreign
// package, "std/test/example").
type GlobalName struct {
	Module string
	Name   string
}

func (g GlobalName) String() string {
	return fmt.Sprintf("%s::%s", g.Module, g.Name)
}

// IsZero reports whether g has never been populated.
func (g GlobalName) IsZero() bool {
	return g.Module == "" && g.Name == ""
}

// Reference is the triple described in spec.md 3: a raw identifier as
// written in source, optionally disambiguated within its module (filled by
// the per-module resolver) and, later, qualified by a GlobalName (filled by
// the merger). Kind records which of the three independent namespaces this
// reference was looked up in, determined by the reference's syntactic
// position (a variable in a NamePath, a function name in a FnCall, a
// struct name in Type).
type Reference struct {
	Raw            string
	Kind           SymbolKind
	ModuleResolved string // ResolvedName, e.g. "0_x"; empty until C runs
	GlobalResolved *GlobalName
	Pos            Pos
}

func (r *Reference) String() string {
	if r.GlobalResolved != nil {
		return r.GlobalResolved.String()
	}
	if r.ModuleResolved != "" {
		return r.ModuleResolved
	}
	return r.Raw
}

func (r *Reference) Position() Pos { return r.Pos }

// Resolved reports whether the module-resolved field has been filled by C.
func (r *Reference) Resolved() bool { return r.ModuleResolved != "" }

// Linked reports whether the global-resolved field has been filled by D.
func (r *Reference) Linked() bool { return r.GlobalResolved != nil }
