package ast

import (
	"fmt"
	"strings"
)

// ModuleImport is a `mod name;` or `pub mod name;` declaration, consumed by
// the file retriever (component B) to discover child modules.
type ModuleImport struct {
	Public bool
	Name   string
	Pos    Pos
}

func (m *ModuleImport) Position() Pos { return m.Pos }
func (m *ModuleImport) String() string {
	if m.Public {
		return fmt.Sprintf("pub mod %s;", m.Name)
	}
	return fmt.Sprintf("mod %s;", m.Name)
}

// UseElement is one imported name inside a `use` declaration.
type UseElement struct {
	OriginName   string
	ImportedName *Reference
}

// Use is a `use path::...::{elements}` declaration, consumed by the module
// merger's link phase (component D).
type Use struct {
	Path     []string
	Elements []UseElement
	Pos      Pos
}

func (u *Use) Position() Pos { return u.Pos }
func (u *Use) String() string {
	names := make([]string, len(u.Elements))
	for i, e := range u.Elements {
		names[i] = e.OriginName
	}
	return fmt.Sprintf("use %s::{%s};", strings.Join(u.Path, "::"), strings.Join(names, ", "))
}

// Module is the parsed contents of one source file, before per-module
// resolution has run. Path is the canonical module path assigned by the
// file retriever ("/root", "/root/foo", "/root/foo/bar", ...).
type Module struct {
	Path               string
	Imports            []*ModuleImport
	Uses               []*Use
	PublicDefinitions  []Definition
	Block              *Block
	Pos                Pos
}

func (m *Module) Position() Pos { return m.Pos }
func (m *Module) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n", m.Path)
	for _, imp := range m.Imports {
		b.WriteString(imp.String())
		b.WriteString("\n")
	}
	for _, use := range m.Uses {
		b.WriteString(use.String())
		b.WriteString("\n")
	}
	for _, def := range m.PublicDefinitions {
		b.WriteString("pub ")
		b.WriteString(def.String())
		b.WriteString("\n")
	}
	if m.Block != nil {
		for _, def := range m.Block.Definitions {
			b.WriteString(def.String())
			b.WriteString("\n")
		}
	}
	return b.String()
}

// AllDefinitions returns public and private definitions together, in a
// stable order (public first, then block-local), for callers that don't
// care about the partition.
func (m *Module) AllDefinitions() []Definition {
	defs := make([]Definition, 0, len(m.PublicDefinitions)+len(m.Block.Definitions))
	defs = append(defs, m.PublicDefinitions...)
	defs = append(defs, m.Block.Definitions...)
	return defs
}
