// Package ast defines the shared AST model consumed by every front-end
// component: discovery, resolution, merging, and type checking.
package ast

import "fmt"

// Pos is a position in a source file.
type Pos struct {
	File   string
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a range in a source file, used for diagnostics.
type Span struct {
	Start Pos
	End   Pos
}

// Node is the base interface implemented by every AST node.
type Node interface {
	String() string
	Position() Pos
}
